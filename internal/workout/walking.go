package workout

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
)

// Walking is race-walking. Height is kept in meters.
type Walking struct {
	Record
	HeightM float64
	label   string
}

func NewWalking(r Record, heightCm int) *Walking {
	return &Walking{
		Record:  r,
		HeightM: float64(heightCm) / cmInM,
		label:   "SportsWalking",
	}
}

func (w *Walking) DistanceKm() float64 {
	return distance(w.Actions, LenStep)
}

func (w *Walking) MeanSpeedKmH() float64 {
	return meanSpeed(w.Record)
}

// CaloriesKcal divides by height without a guard, so a zero height gives +Inf or NaN.
func (w *Walking) CaloriesKcal() float64 {
	speed := kmhInMsec * w.MeanSpeedKmH()
	perMinute := walkingCaloriesWeightMultiplier*w.WeightKg +
		(math.Pow(speed, 2)/w.HeightM)*walkingSpeedHeightMultiplier*w.WeightKg
	return perMinute * (w.DurationHours * minInH)
}

func (w *Walking) Summary() Summary {
	return summarize(w.label, w.Record, w)
}
