package main

import (
	"encoding/json"
	"flag"
	"log"
	"time"

	"drive-go/binlog"
	"drive-go/sim"
	"drive-go/web"
)

func main() {
	logPath := flag.String("log", "", "Recorded run log")
	httpPort := flag.Int("http", 8090, "Serve the viz on this port")
	distDir := flag.String("web", "", "Static frontend directory for the viz")
	speed := flag.Float64("speed", 1.0, "Replay speed multiplier (0 for max speed)")
	flag.Parse()

	if *logPath == "" {
		log.Fatal("--log required")
	}

	parser := binlog.NewParser(*logPath)
	if err := parser.Parse(); err != nil {
		log.Fatalf("Parse log failed: %v", err)
	}
	if len(parser.Records) == 0 {
		log.Fatal("Log holds no records")
	}
	log.Printf("Replaying %d ticks (%d rays, %d Hz) at %.1fx speed...",
		len(parser.Records), parser.RayCount, parser.TickHz, *speed)

	srv := web.NewServer()
	go srv.Start(*httpPort, *distDir, "")

	firstTs := parser.Records[0].TSMs
	startReal := time.Now()

	for _, rec := range parser.Records {
		if *speed > 0 {
			targetDelay := time.Duration(float64(rec.TSMs-firstTs) / *speed * float64(time.Millisecond))
			elapsed := time.Since(startReal)
			if targetDelay > elapsed {
				time.Sleep(targetDelay - elapsed)
			}
		}

		frame := sim.Frame{
			Tick:      int64(rec.Seq),
			TS:        rec.TSMs,
			X:         rec.X,
			Y:         rec.Y,
			Heading:   rec.Heading,
			Autopilot: rec.Autopilot,
			Distances: rec.Distances,
			Steering:  rec.Steering,
			Speed:     rec.Speed,
		}
		b, err := json.Marshal(frame)
		if err != nil {
			continue
		}
		srv.Hub.Broadcast(b)
	}
	log.Printf("Replay done. Total ticks: %d", len(parser.Records))
}
