package binlog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Parser reads a whole run log back into memory.
type Parser struct {
	Path string

	RayCount int
	TickHz   int
	Records  []Record
}

func NewParser(path string) *Parser {
	return &Parser{Path: path}
}

func (p *Parser) Parse() error {
	f, err := os.Open(p.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr := make([]byte, globalLen)
	if _, err := io.ReadFull(f, hdr); err != nil {
		return fmt.Errorf("global header: %w", err)
	}
	if magic := binary.LittleEndian.Uint32(hdr[0:4]); magic != DriveMagic {
		return fmt.Errorf("bad magic 0x%08X, not a drive log", magic)
	}
	p.RayCount = int(binary.LittleEndian.Uint32(hdr[8:12]))
	p.TickHz = int(binary.LittleEndian.Uint32(hdr[12:16]))

	rec := make([]byte, recordLen)
	for {
		if _, err := io.ReadFull(f, rec); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return fmt.Errorf("record header: %w", err)
		}
		tsMs := int64(binary.LittleEndian.Uint64(rec[0:8]))
		inclLen := binary.LittleEndian.Uint32(rec[8:12])
		seq := binary.LittleEndian.Uint32(rec[12:16])

		minLen := uint32(4 + 5*8)
		if inclLen < minLen {
			// malformed record, skip the stated length
			if _, err := f.Seek(int64(inclLen), io.SeekCurrent); err != nil {
				return fmt.Errorf("skip malformed record: %w", err)
			}
			continue
		}

		payload := make([]byte, inclLen)
		if _, err := io.ReadFull(f, payload); err != nil {
			return fmt.Errorf("record payload: %w", err)
		}

		flags := binary.LittleEndian.Uint16(payload[0:2])
		r := Record{
			Seq:       seq,
			TSMs:      tsMs,
			Autopilot: flags&flagAutopilot != 0,
		}
		off := 4
		fields := []*float64{&r.X, &r.Y, &r.Heading, &r.Steering, &r.Speed}
		for _, fp := range fields {
			*fp = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))
			off += 8
		}
		nDist := (int(inclLen) - off) / 8
		r.Distances = make([]float64, 0, nDist)
		for i := 0; i < nDist; i++ {
			r.Distances = append(r.Distances, math.Float64frombits(binary.LittleEndian.Uint64(payload[off:])))
			off += 8
		}
		p.Records = append(p.Records, r)
	}
	return nil
}
