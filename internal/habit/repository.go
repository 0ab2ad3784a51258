package habit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateWithWeekDays(h *Habit, weekDays []HabitWeekDay) error
	FindPossibleByDate(date time.Time, weekDay int) ([]Habit, error)
	Exists(id uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithWeekDays inserts the habit and its weekday rules as one
// transaction; either all rows become visible or none.
func (r *repository) CreateWithWeekDays(h *Habit, weekDays []HabitWeekDay) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			return err
		}
		if len(weekDays) > 0 {
			if err := tx.Create(&weekDays).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindPossibleByDate returns habits that existed by date and are scheduled
// for the given weekday, each with its full weekday rule set loaded.
func (r *repository) FindPossibleByDate(date time.Time, weekDay int) ([]Habit, error) {
	habits := []Habit{}
	if err := r.db.
		Preload("WeekDays").
		Where("created_at <= ?", date).
		Where("EXISTS (SELECT 1 FROM habit_week_days hwd WHERE hwd.habit_id = habits.id AND hwd.week_day = ?)", weekDay).
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *repository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&Habit{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
