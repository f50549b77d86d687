package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/ftracker/internal/activity"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))

	activityService := activity.NewService(logger)

	if err := run(os.Stdout, os.Args[1:], logger, activityService); err != nil {
		logger.Error("Error running ftracker", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, logger *slog.Logger, activityService *activity.Service) error {
	cli := activity.NewCLI(w, logger, activityService)

	if err := cli.Run(context.Background(), args); err != nil {
		return err
	}

	return nil
}
