package habit

import (
	"time"

	"github.com/google/uuid"
)

// Habit is immutable after creation; there are no update or delete routes.
// CreatedAt is midnight-normalized by the service, never set by the DB.
type Habit struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	WeekDays  []HabitWeekDay `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"weekDays,omitempty"`
}

func (Habit) TableName() string { return "habits" }

// HabitWeekDay is one weekday (0=Sunday..6=Saturday) a habit recurs on.
// A habit may carry duplicate weekdays; uniqueness is not enforced.
type HabitWeekDay struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	HabitID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	WeekDay int       `gorm:"column:week_day;not null" json:"week_day"`
}

func (HabitWeekDay) TableName() string { return "habit_week_days" }
