package activity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/spf13/cobra"
)

type CLI struct {
	writer          io.Writer
	activityService *Service
	logger          *slog.Logger
}

func NewCLI(w io.Writer, logger *slog.Logger, activityService *Service) *CLI {
	return &CLI{
		writer:          w,
		activityService: activityService,
		logger:          logger,
	}
}

// Run executes the command line. With no arguments it reports the built-in samples.
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ftracker",
		Short:         "Summarize running, race-walking and swimming workouts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.activityService.Report(cmd.Context(), c.writer, Samples)
		},
	}
	root.SetOut(c.writer)
	root.AddCommand(c.gpxCommand())

	return root
}

func (c *CLI) gpxCommand() *cobra.Command {
	var (
		gpxFile  string
		code     string
		weightKg float64
		heightCm int
	)

	cmd := &cobra.Command{
		Use:   "gpx",
		Short: "Summarize a workout recorded as a GPX track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := workout.ParseKind(code)
			if err != nil {
				return err
			}

			c.logger.Info("Reading gpx file", slog.String("gpx_file", gpxFile))

			gpxBytes, err := readGPXFile(gpxFile)
			if err != nil {
				return err
			}

			sample, err := SampleFromGPX(gpxBytes, kind, weightKg, heightCm)
			if err != nil {
				return err
			}

			return c.activityService.Report(cmd.Context(), c.writer, []Sample{sample})
		},
	}

	cmd.Flags().StringVar(&gpxFile, "file", "", "path to gpx file")
	cmd.Flags().StringVar(&code, "kind", workout.Run.String(), "workout type code (RUN or WLK)")
	cmd.Flags().Float64Var(&weightKg, "weight", 0, "body weight in kg")
	cmd.Flags().IntVar(&heightCm, "height", 0, "body height in cm, used by WLK")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	return os.ReadFile(gpxFile)
}
