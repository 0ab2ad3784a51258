package day

import (
	"time"

	"github.com/google/uuid"

	"habits-api/internal/habit"
)

type DaySummaryResponse struct {
	PossibleHabits []habit.Habit `json:"possibleHabits"`
	// Absent from the JSON when no Day row exists for the requested date.
	CompletedHabits []CompletedHabit `json:"completedHabits,omitempty"`
}

type CompletedHabit struct {
	HabitID uuid.UUID `json:"habit_id"`
}

// SummaryRow is one Day with its completion count and how many habits were
// possible on it, recomputed from current schedules.
type SummaryRow struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Completed float64   `json:"completed"`
	Amount    float64   `json:"amount"`
}
