package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/container"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := config.Load()
	c, err := container.New(ctx, settings)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	if err := c.Scheduler.Start(settings.ReminderSchedule); err != nil {
		log.Fatalf("failed to start reminders: %v", err)
	}
	defer c.Scheduler.Stop()

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// Insight generation can take a while.
		WriteTimeout: settings.InsightTimeout + 10*time.Second,
	}

	go func() {
		config.Logger.WithField("port", settings.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
