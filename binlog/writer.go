package binlog

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"sync"
)

const (
	DriveMagic = 0xD21BE10F

	globalLen = 24 // magic(4), major(2), minor(2), rays(4), tickHz(4), reserved(8)
	recordLen = 16 // ts_ms(8), incl_len(4), seq(4)

	flagAutopilot = 0x01
)

// Record is one tick of a recorded run. Ray segments are not stored; they
// are reconstructible from pose, distances and the fan geometry.
type Record struct {
	Seq       uint32
	TSMs      int64
	Autopilot bool
	X, Y      float64
	Heading   float64
	Steering  float64
	Speed     float64
	Distances []float64
}

// Writer appends one record per tick to a run log. Safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func NewWriter(path string, rayCount, tickHz int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		w:   f,
		buf: make([]byte, 32), // reused buffer for headers
	}

	if err := w.writeGlobalHeader(rayCount, tickHz); err != nil {
		f.Close()
		return nil, err
	}

	return w, nil
}

func (w *Writer) writeGlobalHeader(rayCount, tickHz int) error {
	b := make([]byte, globalLen)
	binary.LittleEndian.PutUint32(b[0:], DriveMagic)
	binary.LittleEndian.PutUint16(b[4:], 1) // Major
	binary.LittleEndian.PutUint16(b[6:], 0) // Minor
	binary.LittleEndian.PutUint32(b[8:], uint32(rayCount))
	binary.LittleEndian.PutUint32(b[12:], uint32(tickHz))
	// reserved 16..24 = 0
	_, err := w.w.Write(b)
	return err
}

func (w *Writer) WriteRecord(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// flags(2) + pad(2) + 5 float64 pose/decision fields + distances
	payloadLen := 4 + 5*8 + 8*len(r.Distances)

	binary.LittleEndian.PutUint64(w.buf[0:], uint64(r.TSMs))
	binary.LittleEndian.PutUint32(w.buf[8:], uint32(payloadLen))
	binary.LittleEndian.PutUint32(w.buf[12:], r.Seq)
	if _, err := w.w.Write(w.buf[:recordLen]); err != nil {
		return err
	}

	payload := make([]byte, payloadLen)
	flags := uint16(0)
	if r.Autopilot {
		flags |= flagAutopilot
	}
	binary.LittleEndian.PutUint16(payload[0:], flags)
	off := 4
	for _, v := range []float64{r.X, r.Y, r.Heading, r.Steering, r.Speed} {
		binary.LittleEndian.PutUint64(payload[off:], math.Float64bits(v))
		off += 8
	}
	for _, d := range r.Distances {
		binary.LittleEndian.PutUint64(payload[off:], math.Float64bits(d))
		off += 8
	}

	_, err := w.w.Write(payload)
	return err
}

func (w *Writer) Close() error {
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
