package sim

import "math"

// Manual steering rate, degrees per tick.
const manualTurnDeg = 5

// Vehicle is the car pose in window coordinates. Heading is in degrees with
// screen convention: y decreases as the vehicle moves "up".
type Vehicle struct {
	X, Y    float64
	Heading float64
	Speed   float64
}

// Turn rotates the vehicle in place. Positive is counter-clockwise.
func (v *Vehicle) Turn(deg float64) {
	v.Heading += deg
}

// Drive moves the vehicle along its heading at its own speed. dir is +1
// forward, -1 reverse.
func (v *Vehicle) Drive(dir float64) {
	rad := v.Heading * math.Pi / 180
	v.X += dir * v.Speed * math.Cos(rad)
	v.Y -= dir * v.Speed * math.Sin(rad)
}

// Advance applies one autopilot step: steer first, then move at the decided
// speed along the new heading.
func (v *Vehicle) Advance(steering, speed float64) {
	v.Heading += steering
	rad := v.Heading * math.Pi / 180
	v.X += speed * math.Cos(rad)
	v.Y -= speed * math.Sin(rad)
}
