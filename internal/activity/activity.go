package activity

// Sample is one raw workout as reported by a tracker: a type code and the
// positional sensor values for it.
type Sample struct {
	Name   string
	Code   string
	Values []float64
}

// Samples is the fixed batch reported when ftracker runs without arguments.
var Samples = []Sample{
	{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Values: []float64{15000, 1, 75}},
	{Code: "WLK", Values: []float64{9000, 1, 75, 180}},
}
