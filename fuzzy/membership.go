package fuzzy

import "fmt"

// Triangle is a triangular membership shape over a 1-D universe, defined by
// the ordered triple (a, b, c). Degenerate edges (a == b or b == c) give a
// right triangle. Immutable once constructed.
type Triangle struct {
	A, B, C float64
}

// NewTriangle validates the triple ordering. Shape errors are configuration
// errors and surface here, never during evaluation.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if !(a <= b && b <= c) {
		return Triangle{}, fmt.Errorf("membership triple (%g, %g, %g) not ordered a <= b <= c", a, b, c)
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// Degree evaluates the shape at x. Zero outside [a, c], one at the peak,
// linear ramps between.
func (t Triangle) Degree(x float64) float64 {
	if x < t.A || x > t.C {
		return 0
	}
	if x == t.B {
		return 1
	}
	if x < t.B {
		return (x - t.A) / (t.B - t.A)
	}
	return (t.C - x) / (t.C - t.B)
}
