package day

import (
	"time"

	"github.com/google/uuid"

	"habits-api/internal/habit"
)

// Day is created lazily on the first toggle for a date and never deleted,
// even when its last completion is toggled off. The unique index on date
// guarantees at most one row per calendar day.
type Day struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time  `gorm:"not null;uniqueIndex" json:"date"`
	DayHabits []DayHabit `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Day) TableName() string { return "days" }

// DayHabit records "habit X was completed on day Y". Presence of a row is
// the completion flag; the pair (day_id, habit_id) is unique.
type DayHabit struct {
	ID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	DayID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_day_habits_day_habit" json:"day_id"`
	HabitID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_day_habits_day_habit" json:"habit_id"`
	Habit   habit.Habit `gorm:"foreignKey:HabitID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (DayHabit) TableName() string { return "day_habits" }
