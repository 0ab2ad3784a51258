package container

import (
	"gorm.io/gorm"

	"habits-api/internal/day"
	"habits-api/internal/habit"
)

type Container struct {
	HabitContainer *habit.Container
	DayContainer   *day.Container
}

// New wires the dependency graph from an injected store handle; the habit
// repository is built first because the day service reads habit schedules,
// and the day service in turn backs the habit toggle route.
func New(db *gorm.DB) *Container {
	habitRepo := habit.NewRepository(db)
	dayContainer := day.NewContainer(db, habitRepo)
	habitContainer := habit.NewContainer(habitRepo, dayContainer.Service)

	return &Container{
		HabitContainer: habitContainer,
		DayContainer:   dayContainer,
	}
}
