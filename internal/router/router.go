package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"habits-api/internal/day"
	"habits-api/internal/habit"
	"habits-api/internal/middlewares"
)

type RouterConfig struct {
	HabitHandler *habit.Handler
	DayHandler   *day.Handler
	CORSOrigin   string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigin))
	r.Use(middlewares.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/habits", habit.Routes(cfg.HabitHandler))
	r.Mount("/day", day.Routes(cfg.DayHandler))
	r.Get("/summary", cfg.DayHandler.Summary)

	return r
}
