package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func WaitForShutdown(logger *slog.Logger) {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sc)
	<-sc
	logger.Info("Shutdown signal received")
}
