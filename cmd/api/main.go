package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habits-api/internal/config"
	"habits-api/internal/container"
	"habits-api/internal/day"
	"habits-api/internal/habit"
	"habits-api/internal/router"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)
	log := config.Logger()

	db, err := config.Connect(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.AutoMigrate(
		&habit.Habit{},
		&habit.HabitWeekDay{},
		&day.Day{},
		&day.DayHabit{},
	); err != nil {
		log.WithError(err).Fatal("Failed to migrate schema")
	}

	c := container.New(db)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.New(router.RouterConfig{
			HabitHandler: c.HabitContainer.Handler,
			DayHandler:   c.DayContainer.Handler,
			CORSOrigin:   cfg.CORSOrigin,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
