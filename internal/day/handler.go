package day

import (
	"net/http"

	"habits-api/internal/config"
	util "habits-api/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	raw := r.URL.Query().Get("date")
	if raw == "" {
		http.Error(w, "date query parameter required", http.StatusBadRequest)
		return
	}

	date, err := util.ParseDate(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid date parameter")
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		log.WithError(err).Error("Failed to build day summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	rows, err := h.service.Summary(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, rows)
}
