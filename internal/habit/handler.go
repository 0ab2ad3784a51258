package habit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"habits-api/internal/apperr"
	"habits-api/internal/config"
)

// Toggler flips a habit's completion record for today. The day package
// provides the implementation, since it owns the completion lifecycle.
type Toggler interface {
	ToggleHabit(ctx context.Context, habitID uuid.UUID) error
}

type Handler struct {
	service Service
	toggler Toggler
}

func NewHandler(service Service, toggler Toggler) *Handler {
	return &Handler{service: service, toggler: toggler}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for habit creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create habit")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid habit id", http.StatusBadRequest)
		return
	}

	if err := h.toggler.ToggleHabit(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to toggle habit completion")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
