package day

import (
	"gorm.io/gorm"

	"habits-api/internal/habit"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, habitRepo habit.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, habitRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
