package activity

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(w io.Writer) *CLI {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCLI(w, logger, NewService(logger))
}

func TestCLIWithoutArgs(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, newTestCLI(&out).Run(context.Background(), nil))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, sampleLines, lines)
}

func TestCLIGPX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morning.gpx")
	require.NoError(t, os.WriteFile(path, []byte(trackGPX), 0o644))

	var out bytes.Buffer
	err := newTestCLI(&out).Run(context.Background(), []string{"gpx", "--file", path, "--weight", "75"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Training type: Running; Duration: 0.167 h.;"), out.String())
}

func TestCLIGPXErrors(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(&out)

	err := cli.Run(context.Background(), []string{"gpx", "--file", t.TempDir(), "--weight", "75"})
	assert.ErrorContains(t, err, "directory")

	err = cli.Run(context.Background(), []string{"gpx", "--file", "missing.gpx", "--weight", "75", "--kind", "XYZ"})
	assert.ErrorIs(t, err, workout.ErrInvalidWorkoutType)

	err = cli.Run(context.Background(), []string{"gpx", "--weight", "75"})
	assert.Error(t, err)

	assert.Empty(t, out.String())
}
