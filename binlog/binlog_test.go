package binlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteParseRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.drv")

	w, err := NewWriter(path, 7, 15)
	require.NoError(t, err)

	records := []Record{
		{
			Seq: 1, TSMs: 1700000000000, Autopilot: true,
			X: 500.5, Y: 400.25, Heading: 12.5, Steering: -3.75, Speed: 10,
			Distances: []float64{10, 50, 600, 5, 42, 99, 250},
		},
		{
			Seq: 2, TSMs: 1700000000066, Autopilot: false,
			X: 510, Y: 399, Heading: 17.5, Speed: 10,
		},
	}
	for _, r := range records {
		require.NoError(t, w.WriteRecord(r))
	}
	require.NoError(t, w.Close())

	p := NewParser(path)
	require.NoError(t, p.Parse())

	assert.Equal(t, 7, p.RayCount)
	assert.Equal(t, 15, p.TickHz)
	require.Len(t, p.Records, 2)

	assert.Equal(t, records[0].Seq, p.Records[0].Seq)
	assert.Equal(t, records[0].TSMs, p.Records[0].TSMs)
	assert.True(t, p.Records[0].Autopilot)
	assert.Equal(t, records[0].Distances, p.Records[0].Distances)
	assert.Equal(t, records[0].Steering, p.Records[0].Steering)

	assert.False(t, p.Records[1].Autopilot)
	assert.Empty(t, p.Records[1].Distances)
	assert.Equal(t, records[1].Heading, p.Records[1].Heading)
}

func TestParseRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.drv")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

	p := NewParser(path)
	assert.Error(t, p.Parse())
}

func TestParseMissingFile(t *testing.T) {
	p := NewParser(filepath.Join(t.TempDir(), "nope.drv"))
	assert.Error(t, p.Parse())
}
