package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliverysystem/cmd"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := cmd.NewLogger(configs, os.Stdout)
	if err != nil {
		log.Fatalf("invalid logger configuration: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to release resources", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.JobsEnabled {
		jobManager := app.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	server := app.CreateHTTPServer()
	go func() {
		if err := server.Start(configs.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
