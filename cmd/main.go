package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"martstore/internal/app"
	"martstore/internal/config"
)

func main() {
	// Optional .env for local development.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("failed to assemble application: %v", err)
	}
	defer application.Close()

	application.Scheduler.Start()
	defer func() {
		if err := application.Scheduler.Stop(); err != nil {
			logrus.WithError(err).Warn("job scheduler shutdown failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")
}
