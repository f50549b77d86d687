package workout

import "fmt"

const (
	// LenStep is the distance covered by one step, in meters.
	LenStep         = 0.65
	swimmingLenStep = 1.38
	mInKm           = 1000
	minInH          = 60
	cmInM           = 100
)

// Calculator computes the statistics for a single workout.
type Calculator interface {
	DistanceKm() float64
	MeanSpeedKmH() float64
	CaloriesKcal() float64
	Summary() Summary
}

// Record is the raw sensor input shared by every workout kind.
type Record struct {
	Actions       int
	DurationHours float64
	WeightKg      float64
}

type Summary struct {
	Kind          string
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmH  float64
	CaloriesKcal  float64
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h.; Distance: %.3f km; Mean speed: %.3f km/h; Spent calories: %.3f.",
		s.Kind, s.DurationHours, s.DistanceKm, s.MeanSpeedKmH, s.CaloriesKcal,
	)
}

func distance(actions int, step float64) float64 {
	return float64(actions) * step / mInKm
}

// meanSpeed is the step based speed used by running and walking.
// A zero duration yields +Inf or NaN.
func meanSpeed(r Record) float64 {
	return distance(r.Actions, LenStep) / r.DurationHours
}

func summarize(label string, r Record, c Calculator) Summary {
	return Summary{
		Kind:          label,
		DurationHours: r.DurationHours,
		DistanceKm:    c.DistanceKm(),
		MeanSpeedKmH:  c.MeanSpeedKmH(),
		CaloriesKcal:  c.CaloriesKcal(),
	}
}
