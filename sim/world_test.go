package sim

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drive-go/track"
)

// openField is an all-black track: nothing blocks, every ray runs out to max
// range.
func openField(t *testing.T, w, h int) *track.Field {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}
	f, err := track.FromImage(img, w, h)
	require.NoError(t, err)
	return f
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Window = WindowConfig{Width: 200, Height: 200}
	w, err := NewWorld(cfg, openField(t, 200, 200))
	require.NoError(t, err)
	return w
}

func TestWorldStartsAtWindowCenter(t *testing.T) {
	w := newTestWorld(t)
	v := w.Vehicle()
	assert.Equal(t, 100.0, v.X)
	assert.Equal(t, 100.0, v.Y)
}

func TestWorldAutopilotHoldsCourseOnOpenField(t *testing.T) {
	w := newTestWorld(t)
	w.SetAutopilot(true)

	frame, err := w.Step()
	require.NoError(t, err)

	assert.True(t, frame.Autopilot)
	assert.Equal(t, 0.0, frame.Steering, "nothing fires on an open field")
	assert.Equal(t, 0.0, frame.Heading)
	assert.InDelta(t, 110.0, frame.X, 1e-9, "advanced one speed step")
	require.Len(t, frame.Distances, 7)
	for i, d := range frame.Distances {
		assert.Equal(t, 600.0, d, "ray %d", i)
	}
	assert.Len(t, frame.Rays, 7)
}

func TestWorldToggleCommand(t *testing.T) {
	w := newTestWorld(t)
	w.Commands() <- CmdToggleAutopilot

	frame, err := w.Step()
	require.NoError(t, err)
	assert.True(t, frame.Autopilot)

	w.Commands() <- CmdToggleAutopilot
	frame, err = w.Step()
	require.NoError(t, err)
	assert.False(t, frame.Autopilot)
}

func TestWorldManualCommands(t *testing.T) {
	w := newTestWorld(t)

	w.Commands() <- CmdTurnLeft
	frame, err := w.Step()
	require.NoError(t, err)
	assert.Equal(t, 5.0, frame.Heading)
	assert.Empty(t, frame.Distances, "no sensing in manual mode")

	w.Commands() <- CmdTurnRight
	w.Commands() <- CmdTurnRight
	frame, err = w.Step()
	require.NoError(t, err)
	assert.Equal(t, -5.0, frame.Heading)

	start := w.Vehicle()
	w.Commands() <- CmdForward
	_, err = w.Step()
	require.NoError(t, err)
	assert.NotEqual(t, start.X, w.Vehicle().X)
}

func TestWorldManualCommandsIgnoredOnAutopilot(t *testing.T) {
	w := newTestWorld(t)
	w.SetAutopilot(true)

	w.Commands() <- CmdTurnLeft
	frame, err := w.Step()
	require.NoError(t, err)
	assert.Equal(t, 0.0, frame.Heading, "manual turn must not leak into autopilot")
}

func TestWorldSinksSeeEveryFrame(t *testing.T) {
	w := newTestWorld(t)
	var got []Frame
	w.AddSink(func(f Frame) { got = append(got, f) })

	for i := 0; i < 3; i++ {
		_, err := w.Step()
		require.NoError(t, err)
	}
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].Tick)
	assert.Equal(t, int64(3), got[2].Tick)
}
