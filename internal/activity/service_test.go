package activity

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLines = []string{
	"Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Mean speed: 1.000 km/h; Spent calories: 336.000.",
	"Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Mean speed: 9.750 km/h; Spent calories: 797.805.",
	"Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Mean speed: 5.850 km/h; Spent calories: 349.252.",
}

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReportSamples(t *testing.T) {
	var out bytes.Buffer

	err := newTestService().Report(context.Background(), &out, Samples)
	require.NoError(t, err)

	assert.Equal(t, strings.Join(sampleLines, "\n")+"\n", out.String())
}

func TestReportStopsOnInvalidWorkoutType(t *testing.T) {
	var out bytes.Buffer
	samples := []Sample{
		{Code: "RUN", Values: []float64{15000, 1, 75}},
		{Code: "XYZ", Values: []float64{1, 1, 1}},
		{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
	}

	err := newTestService().Report(context.Background(), &out, samples)
	require.ErrorIs(t, err, workout.ErrInvalidWorkoutType)

	assert.Equal(t, sampleLines[1]+"\n", out.String())
}

func TestReportParameterCount(t *testing.T) {
	var out bytes.Buffer

	err := newTestService().Report(context.Background(), &out, []Sample{{Code: "WLK", Values: []float64{9000, 1, 75}}})
	require.ErrorIs(t, err, workout.ErrParameterCount)
	assert.Empty(t, out.String())
}

func TestReportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newTestService().Report(ctx, &out, Samples)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSummarize(t *testing.T) {
	s, err := newTestService().Summarize(Samples[1])
	require.NoError(t, err)

	assert.Equal(t, "Running", s.Kind)
	assert.InDelta(t, 9.75, s.DistanceKm, 1e-9)
}
