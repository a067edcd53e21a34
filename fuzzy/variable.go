package fuzzy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DistanceLabel enumerates the labels of a ray-distance input variable.
type DistanceLabel int

const (
	Close DistanceLabel = iota
	Medium
	Far

	numDistanceLabels
)

// SteeringLabel enumerates the labels of the steering output variable.
type SteeringLabel int

const (
	HardLeft SteeringLabel = iota
	Left
	SlightLeft
	Straight
	SlightRight
	Right
	HardRight

	numSteeringLabels
)

// Steering output universe, degrees.
const (
	SteeringLo   = -90.0
	SteeringHi   = 90.0
	SteeringStep = 1.0
)

// Variable is a named scalar universe [Lo, Hi] with a fixed table of labeled
// triangular sets, indexed by the label enums above. All shapes live on the
// same universe. Read-only after construction.
type Variable struct {
	Name   string
	Lo, Hi float64
	shapes []Triangle
}

func newVariable(name string, lo, hi float64, shapes []Triangle) (*Variable, error) {
	if lo >= hi {
		return nil, fmt.Errorf("variable %s: empty universe [%g, %g]", name, lo, hi)
	}
	for i, s := range shapes {
		if s.A < lo || s.C > hi {
			return nil, fmt.Errorf("variable %s: shape %d (%g, %g, %g) exceeds universe [%g, %g]",
				name, i, s.A, s.B, s.C, lo, hi)
		}
	}
	return &Variable{Name: name, Lo: lo, Hi: hi, shapes: shapes}, nil
}

// Degree returns the membership degree of x in the labeled set. Values
// outside the universe clamp to its bounds (sensor noise tolerance).
func (v *Variable) Degree(label int, x float64) float64 {
	if x < v.Lo {
		x = v.Lo
	} else if x > v.Hi {
		x = v.Hi
	}
	return v.shapes[label].Degree(x)
}

// Shape returns the labeled set itself.
func (v *Variable) Shape(label int) Triangle {
	return v.shapes[label]
}

// Sample returns the universe discretized at the given step, endpoints
// included.
func (v *Variable) Sample(step float64) []float64 {
	n := int((v.Hi-v.Lo)/step) + 1
	return floats.Span(make([]float64, n), v.Lo, v.Hi)
}

// NewDistanceVariable builds one ray input variable over [0, maxRange] with
// the fixed close/medium/far shapes.
func NewDistanceVariable(name string, maxRange float64) (*Variable, error) {
	specs := [numDistanceLabels][3]float64{
		Close:  {0, 0, 100},
		Medium: {50, 100, 400},
		Far:    {300, maxRange, maxRange},
	}
	shapes := make([]Triangle, numDistanceLabels)
	for i, s := range specs {
		t, err := NewTriangle(s[0], s[1], s[2])
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		shapes[i] = t
	}
	return newVariable(name, 0, maxRange, shapes)
}

// NewSteeringVariable builds the single output variable over [-90, 90].
// slight_left and slight_right intentionally share one triangle; that is a
// fixed design constant of the controller.
func NewSteeringVariable() (*Variable, error) {
	specs := [numSteeringLabels][3]float64{
		HardLeft:    {-90, -60, -30},
		Left:        {-45, -30, 0},
		SlightLeft:  {-15, 0, 15},
		Straight:    {-10, 0, 10},
		SlightRight: {-15, 0, 15},
		Right:       {0, 30, 45},
		HardRight:   {30, 60, 90},
	}
	shapes := make([]Triangle, numSteeringLabels)
	for i, s := range specs {
		t, err := NewTriangle(s[0], s[1], s[2])
		if err != nil {
			return nil, fmt.Errorf("variable steering: %w", err)
		}
		shapes[i] = t
	}
	return newVariable("steering", SteeringLo, SteeringHi, shapes)
}
