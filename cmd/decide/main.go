package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"drive-go/control"
)

// decide runs the inference engine offline: each input CSV row is one
// distance vector, each output row the resulting (steering, speed).
func main() {
	inPath := flag.String("in", "", "Input CSV, one distance vector per row")
	outPath := flag.String("out", "decisions.csv", "Output CSV path")
	rays := flag.Int("rays", 7, "Ray count (odd, >= 3)")
	spread := flag.Float64("spread", 90, "Field of view, degrees")
	maxRange := flag.Float64("range", 600, "Max sensor range")
	speed := flag.Float64("speed", 10, "Constant vehicle speed")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("--in required")
	}

	ctrl, err := control.NewController(control.Config{
		RayCount:  *rays,
		SpreadDeg: *spread,
		MaxRange:  *maxRange,
		Speed:     *speed,
	})
	if err != nil {
		log.Fatalf("Controller setup failed: %v", err)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Open input failed: %v", err)
	}
	defer in.Close()

	rows, err := csv.NewReader(in).ReadAll()
	if err != nil {
		log.Fatalf("Read input failed: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Create output failed: %v", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"row", "steering_deg", "speed"}); err != nil {
		log.Fatalf("Write header failed: %v", err)
	}

	for i, row := range rows {
		distances := make([]float64, 0, len(row))
		bad := false
		for _, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				log.Printf("Row %d: bad value %q, skipped", i+1, cell)
				bad = true
				break
			}
			distances = append(distances, v)
		}
		if bad {
			continue
		}
		dec, err := ctrl.Decide(distances)
		if err != nil {
			log.Printf("Row %d: %v, skipped", i+1, err)
			continue
		}
		rec := []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.4f", dec.Steering),
			fmt.Sprintf("%.1f", dec.Speed),
		}
		if err := w.Write(rec); err != nil {
			log.Fatalf("Write row failed: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Flush output failed: %v", err)
	}
	log.Printf("Wrote %s", *outPath)
}
