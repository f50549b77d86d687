package workout

const (
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

type Swimming struct {
	Record
	PoolLengthM  int
	PoolLapCount int
	label        string
}

func NewSwimming(r Record, poolLengthM, poolLapCount int) *Swimming {
	return &Swimming{
		Record:       r,
		PoolLengthM:  poolLengthM,
		PoolLapCount: poolLapCount,
		label:        "Swimming",
	}
}

// DistanceKm counts strokes, not laps.
func (s *Swimming) DistanceKm() float64 {
	return distance(s.Actions, swimmingLenStep)
}

// MeanSpeedKmH is based on the pool laps only and ignores strokes.
func (s *Swimming) MeanSpeedKmH() float64 {
	return float64(s.PoolLengthM) * float64(s.PoolLapCount) / mInKm / s.DurationHours
}

func (s *Swimming) CaloriesKcal() float64 {
	return (s.MeanSpeedKmH() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.WeightKg * s.DurationHours
}

func (s *Swimming) Summary() Summary {
	return summarize(s.label, s.Record, s)
}
