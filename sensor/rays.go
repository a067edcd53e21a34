package sensor

import (
	"fmt"
	"math"
)

// Blocked reports whether a world point is obstructed. Points outside the
// occupancy field must report false so a ray that leaves the field runs out
// to max range.
type Blocked func(x, y float64) bool

// Segment is one cast ray from its origin to the hit point (or max range),
// emitted for visualization only.
type Segment struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Array casts a fixed fan of rays spread symmetrically about the vehicle
// heading. Stateless between casts.
type Array struct {
	Count    int
	Spread   float64 // field of view, degrees
	MaxRange float64
}

// NewArray validates the fan geometry. The count must be odd so the middle
// ray sits exactly on-heading.
func NewArray(count int, spread, maxRange float64) (*Array, error) {
	if count < 3 {
		return nil, fmt.Errorf("ray count %d below minimum 3", count)
	}
	if count%2 == 0 {
		return nil, fmt.Errorf("ray count %d is even, center ray undefined", count)
	}
	if maxRange <= 0 {
		return nil, fmt.Errorf("max range %g must be positive", maxRange)
	}
	return &Array{Count: count, Spread: spread, MaxRange: maxRange}, nil
}

// Angle returns ray i's absolute angle in degrees for the given heading.
func (a *Array) Angle(heading float64, i int) float64 {
	return heading - a.Spread/2 + (a.Spread/float64(a.Count-1))*float64(i)
}

// Cast marches each ray in unit increments from the front point, which sits
// lead units ahead of (cx, cy) along the heading. The first blocked sample
// yields that integer distance; open space yields MaxRange. Screen
// convention: y decreases as the heading angle points up.
func (a *Array) Cast(cx, cy, heading, lead float64, blocked Blocked) ([]float64, []Segment) {
	hr := heading * math.Pi / 180
	fx := cx + lead*math.Cos(hr)
	fy := cy - lead*math.Sin(hr)

	distances := make([]float64, a.Count)
	segments := make([]Segment, a.Count)
	for i := 0; i < a.Count; i++ {
		ar := a.Angle(heading, i) * math.Pi / 180
		dx, dy := math.Cos(ar), -math.Sin(ar)
		dist := a.MaxRange
		for d := 0.0; d < a.MaxRange; d++ {
			if blocked(fx+d*dx, fy+d*dy) {
				dist = d
				break
			}
		}
		distances[i] = dist
		segments[i] = Segment{X0: fx, Y0: fy, X1: fx + dist*dx, Y1: fy + dist*dy}
	}
	return distances, segments
}
