package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"test-entitlement-bot/internal/config"
)

func main() {
	var level slog.LevelVar
	logger := NewLogger(os.Stdout, &level)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.SlogLevel())

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			logger.Error("Application shutdown error", "error", err)
		}
	}()

	if err := app.Run(); err != nil {
		logger.Error("Failed to start application", "error", err)
		return
	}

	WaitForShutdown(logger)
}
