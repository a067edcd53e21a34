package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleDrive(t *testing.T) {
	v := Vehicle{X: 100, Y: 100, Heading: 0, Speed: 10}
	v.Drive(1)
	assert.InDelta(t, 110, v.X, 1e-9)
	assert.InDelta(t, 100, v.Y, 1e-9)

	v = Vehicle{X: 100, Y: 100, Heading: 90, Speed: 10}
	v.Drive(1)
	assert.InDelta(t, 100, v.X, 1e-9)
	assert.InDelta(t, 90, v.Y, 1e-9, "heading up moves toward smaller y")

	v.Drive(-1)
	assert.InDelta(t, 100, v.Y, 1e-9, "reverse undoes forward")
}

func TestVehicleAdvanceSteersThenMoves(t *testing.T) {
	v := Vehicle{X: 0, Y: 0, Heading: 0, Speed: 10}
	v.Advance(90, 10)
	assert.InDelta(t, 90, v.Heading, 1e-9)
	assert.InDelta(t, 0, v.X, 1e-9, "movement happens along the new heading")
	assert.InDelta(t, -10, v.Y, 1e-9)
}

func TestVehicleTurn(t *testing.T) {
	v := Vehicle{Heading: 10}
	v.Turn(manualTurnDeg)
	assert.InDelta(t, 15, v.Heading, 1e-9)
	v.Turn(-manualTurnDeg)
	assert.InDelta(t, 10, v.Heading, 1e-9)
}
