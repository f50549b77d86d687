package activity

import (
	"fmt"
	"math"
	"time"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/tkrajina/gpxgo/gpx"
)

// SampleFromGPX turns a recorded GPX track into a running or walking sample.
// Steps are estimated from the 2D track length and the default step length.
func SampleFromGPX(data []byte, kind workout.Kind, weightKg float64, heightCm int) (Sample, error) {
	if kind == workout.Swim {
		return Sample{}, fmt.Errorf("%w: %s cannot be read from a gpx track", workout.ErrInvalidWorkoutType, kind)
	}

	g, err := gpx.ParseBytes(data)
	if err != nil {
		return Sample{}, fmt.Errorf("error parsing gpx: %w", err)
	}

	if g.GetTrackPointsNo() < 2 {
		return Sample{}, fmt.Errorf("gpx track has %d points, need at least 2", g.GetTrackPointsNo())
	}

	steps := math.Round(g.Length2D() / workout.LenStep)
	hours := g.Duration() / time.Hour.Seconds()

	sample := Sample{
		Name:   g.Name,
		Code:   kind.String(),
		Values: []float64{steps, hours, weightKg},
	}
	if kind == workout.Walk {
		sample.Values = append(sample.Values, float64(heightCm))
	}

	if sample.Name == "" && g.Time != nil {
		sample.Name = defaultName(*g.Time, kind)
	}

	return sample, nil
}

func defaultName(t time.Time, kind workout.Kind) string {
	activity := "Run"
	if kind == workout.Walk {
		activity = "Walk"
	}

	if t.Hour() >= 12 && t.Hour() < 18 {
		return "Afternoon " + activity
	} else if t.Hour() >= 18 {
		return "Night " + activity
	}
	return "Morning " + activity
}
