package activity

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/briangreenhill/ftracker/internal/workout"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Summarize dispatches a single sample and returns its summary.
func (a *Service) Summarize(sample Sample) (workout.Summary, error) {
	c, err := workout.Dispatch(sample.Code, sample.Values)
	if err != nil {
		return workout.Summary{}, err
	}
	return c.Summary(), nil
}

// Report writes one summary line per sample, in order. The first failing
// sample stops the batch.
func (a *Service) Report(ctx context.Context, w io.Writer, samples []Sample) error {
	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return err
		}

		summary, err := a.Summarize(sample)
		if err != nil {
			a.logger.Error("Error summarizing workout", slog.Int("index", i), slog.String("code", sample.Code), slog.Any("error", err))
			return fmt.Errorf("sample %d: %w", i, err)
		}

		a.logger.Debug("Workout summarized",
			slog.String("name", sample.Name),
			slog.String("kind", summary.Kind),
			slog.Float64("calories", summary.CaloriesKcal))

		if _, err := fmt.Fprintln(w, summary); err != nil {
			return err
		}
	}

	return nil
}
