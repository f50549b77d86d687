package workout

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

type Running struct {
	Record
	label string
}

func NewRunning(r Record) *Running {
	return &Running{Record: r, label: "Running"}
}

func (r *Running) DistanceKm() float64 {
	return distance(r.Actions, LenStep)
}

func (r *Running) MeanSpeedKmH() float64 {
	return meanSpeed(r.Record)
}

func (r *Running) CaloriesKcal() float64 {
	// explicit conversion keeps the multiply and add from being fused
	k := float64(runningCaloriesMeanSpeedMultiplier*r.MeanSpeedKmH()) + runningCaloriesMeanSpeedShift
	return k * r.WeightKg / mInKm * (r.DurationHours * minInH)
}

func (r *Running) Summary() Summary {
	return summarize(r.label, r.Record, r)
}
