package day

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByDate(date time.Time) (*Day, error)
	CreateDay(d *Day) error
	FindCompletion(dayID, habitID uuid.UUID) (*DayHabit, error)
	CreateCompletion(dh *DayHabit) error
	DeleteCompletion(id uuid.UUID) error
	Summary() ([]SummaryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByDate matches the stored timestamp exactly. Non-midnight inputs
// therefore miss days created by the toggle path, by contract.
func (r *repository) FindByDate(date time.Time) (*Day, error) {
	var d Day
	if err := r.db.Preload("DayHabits").First(&d, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) CreateDay(d *Day) error {
	return r.db.Create(d).Error
}

func (r *repository) FindCompletion(dayID, habitID uuid.UUID) (*DayHabit, error) {
	var dh DayHabit
	if err := r.db.First(&dh, "day_id = ? AND habit_id = ?", dayID, habitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dh, nil
}

func (r *repository) CreateCompletion(dh *DayHabit) error {
	return r.db.Create(dh).Error
}

func (r *repository) DeleteCompletion(id uuid.UUID) error {
	return r.db.Delete(&DayHabit{}, "id = ?", id).Error
}

// weekDayExpr is the SQL counterpart of util.WeekDay: both yield 0=Sunday
// through 6=Saturday, so day summaries and the aggregate never disagree.
func (r *repository) weekDayExpr() string {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%w', d.date) AS int)"
	}
	return "CAST(EXTRACT(DOW FROM d.date) AS int)"
}

func (r *repository) Summary() ([]SummaryRow, error) {
	query := `
SELECT
  d.id,
  d.date,
  (SELECT CAST(COUNT(*) AS float)
     FROM day_habits dh
    WHERE dh.day_id = d.id) AS completed,
  (SELECT CAST(COUNT(*) AS float)
     FROM habit_week_days hwd
     JOIN habits h ON h.id = hwd.habit_id
    WHERE hwd.week_day = ` + r.weekDayExpr() + `
      AND h.created_at <= d.date) AS amount
FROM days d
ORDER BY d.date`

	rows := []SummaryRow{}
	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
