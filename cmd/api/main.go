package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/apperr"
	"bookshelf/internal/config"
	"bookshelf/internal/logger"
	"bookshelf/internal/server"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		exitWithUsage(err)
	}

	log := logger.New(logger.Config{Format: cfg.LogFormat, Level: cfg.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func exitWithUsage(err error) {
	var ce *apperr.ConfigurationError
	if errors.As(err, &ce) {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n\n%s\n\n", ce.Msg, config.Usage)
	} else {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n\n", err)
	}
	os.Exit(1)
}
