package workout

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	ErrParameterCount     = errors.New("wrong number of workout parameters")
)

type Kind int

const (
	Swim Kind = iota
	Run
	Walk
)

var codes = map[string]Kind{
	"SWM": Swim,
	"RUN": Run,
	"WLK": Walk,
}

// arity is the number of positional values each kind is built from.
var arity = map[Kind]int{
	Swim: 5,
	Run:  3,
	Walk: 4,
}

func ParseKind(code string) (Kind, error) {
	k, ok := codes[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWorkoutType, code)
	}
	return k, nil
}

func (k Kind) String() string {
	switch k {
	case Swim:
		return "SWM"
	case Run:
		return "RUN"
	case Walk:
		return "WLK"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// New builds the calculator for kind from positional values in the order
// action, duration, weight, followed by the kind specific extras:
// height in cm for Walk, pool length and lap count for Swim.
func New(kind Kind, values []float64) (Calculator, error) {
	want, ok := arity[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWorkoutType, kind)
	}
	if len(values) != want {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrParameterCount, kind, want, len(values))
	}

	r := Record{
		Actions:       int(values[0]),
		DurationHours: values[1],
		WeightKg:      values[2],
	}

	switch kind {
	case Swim:
		return NewSwimming(r, int(values[3]), int(values[4])), nil
	case Walk:
		return NewWalking(r, int(values[3])), nil
	default:
		return NewRunning(r), nil
	}
}

// Dispatch parses code and builds the matching calculator.
func Dispatch(code string, values []float64) (Calculator, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	return New(kind, values)
}
