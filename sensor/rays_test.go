package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArrayValidation(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		spread   float64
		maxRange float64
		wantErr  bool
	}{
		{"default fan", 7, 90, 600, false},
		{"minimum fan", 3, 45, 100, false},
		{"even count", 6, 90, 600, true},
		{"too few rays", 1, 90, 600, true},
		{"zero range", 7, 90, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArray(tt.count, tt.spread, tt.maxRange)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAngleSpreadSymmetricAboutHeading(t *testing.T) {
	a, err := NewArray(7, 90, 600)
	require.NoError(t, err)

	assert.InDelta(t, -45.0, a.Angle(0, 0), 1e-12)
	assert.InDelta(t, 0.0, a.Angle(0, 3), 1e-12, "middle ray sits exactly on-heading")
	assert.InDelta(t, 45.0, a.Angle(0, 6), 1e-12)
	assert.InDelta(t, 15.0, a.Angle(0, 4)-a.Angle(0, 3), 1e-12, "even spacing")
}

func TestCastOpenSpaceReturnsMaxRange(t *testing.T) {
	a, err := NewArray(7, 90, 600)
	require.NoError(t, err)

	open := func(x, y float64) bool { return false }
	distances, segments := a.Cast(0, 0, 0, 10, open)

	require.Len(t, distances, 7)
	require.Len(t, segments, 7)
	for i, d := range distances {
		assert.Equal(t, 600.0, d, "ray %d", i)
	}
}

func TestCastWallAhead(t *testing.T) {
	a, err := NewArray(7, 90, 600)
	require.NoError(t, err)

	// Vertical wall at x >= 100, vehicle at the origin heading along +x with
	// a lead of 10, so the front point is (10, 0) and the on-heading ray
	// marches 90 units.
	wall := func(x, y float64) bool { return x >= 100 }
	distances, segments := a.Cast(0, 0, 0, 10, wall)

	assert.Equal(t, 90.0, distances[3])
	// The fan is symmetric and so is the wall, so mirrored rays match.
	for i := 0; i < 3; i++ {
		assert.Equal(t, distances[6-i], distances[i], "ray %d vs %d", i, 6-i)
	}
	// Hit points sit on the wall (within one marching step).
	for i, s := range segments {
		assert.InDelta(t, 100.0, s.X1, 1.0, "ray %d", i)
	}
}

func TestCastScreenYAxisInverted(t *testing.T) {
	a, err := NewArray(3, 30, 600)
	require.NoError(t, err)

	// Heading 90 means "up", which with the screen convention is -y. Wall at
	// y <= -50; front point is (0, -10), so the middle ray travels 40.
	ceiling := func(x, y float64) bool { return y <= -50 }
	distances, _ := a.Cast(0, 0, 90, 10, ceiling)
	assert.Equal(t, 40.0, distances[1])
}

func TestCastBlockedAtFrontPoint(t *testing.T) {
	a, err := NewArray(3, 30, 600)
	require.NoError(t, err)

	everywhere := func(x, y float64) bool { return true }
	distances, _ := a.Cast(0, 0, 0, 10, everywhere)
	for i, d := range distances {
		assert.Equal(t, 0.0, d, "ray %d", i)
	}
}
