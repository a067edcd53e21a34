package fuzzy

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrInputShape reports a distance vector whose length does not match the
// configured ray count.
var ErrInputShape = errors.New("distance vector length mismatch")

// Engine is a Mamdani inference engine over one distance variable per ray and
// the single steering output. Everything is fixed at construction; Evaluate
// is a pure function of the distance vector and may be shared read-only.
type Engine struct {
	inputs   []*Variable
	output   *Variable
	rules    []Rule
	universe []float64
}

// NewEngine builds the engine for rayCount rays sensing up to maxRange.
func NewEngine(rayCount int, maxRange float64) (*Engine, error) {
	if maxRange <= 0 {
		return nil, fmt.Errorf("max range %g must be positive", maxRange)
	}
	rules, err := RuleTable(rayCount)
	if err != nil {
		return nil, err
	}
	inputs := make([]*Variable, rayCount)
	for i := range inputs {
		v, err := NewDistanceVariable(fmt.Sprintf("distance_%d", i), maxRange)
		if err != nil {
			return nil, err
		}
		inputs[i] = v
	}
	output, err := NewSteeringVariable()
	if err != nil {
		return nil, err
	}
	return &Engine{
		inputs:   inputs,
		output:   output,
		rules:    rules,
		universe: output.Sample(SteeringStep),
	}, nil
}

// RayCount returns the number of input variables.
func (e *Engine) RayCount() int {
	return len(e.inputs)
}

// Rules returns the static rule base.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate runs one inference cycle: fuzzify the distances, fire the rules,
// min-clip and max-aggregate the concluded sets over the output universe, and
// defuzzify by centroid. An empty aggregate (nothing fired) yields 0.
func (e *Engine) Evaluate(distances []float64) (float64, error) {
	if len(distances) != len(e.inputs) {
		return 0, fmt.Errorf("%w: got %d values, want %d", ErrInputShape, len(distances), len(e.inputs))
	}

	// Effective firing strength per output label: fuzzy OR (max) across all
	// rules sharing a conclusion.
	var strength [numSteeringLabels]float64
	for _, r := range e.rules {
		d := e.inputs[r.Ray].Degree(int(r.When), distances[r.Ray])
		if d > strength[r.Then] {
			strength[r.Then] = d
		}
	}

	// Pointwise max of each label's shape clipped at its strength.
	mu := make([]float64, len(e.universe))
	for label := SteeringLabel(0); label < numSteeringLabels; label++ {
		s := strength[label]
		if s == 0 {
			continue
		}
		shape := e.output.Shape(int(label))
		for j, x := range e.universe {
			m := shape.Degree(x)
			if m > s {
				m = s
			}
			if m > mu[j] {
				mu[j] = m
			}
		}
	}

	area := floats.Sum(mu)
	if area == 0 {
		return 0, nil
	}
	return floats.Dot(e.universe, mu) / area, nil
}
