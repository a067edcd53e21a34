package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"drive-go/binlog"
	"drive-go/sim"
	"drive-go/track"
	"drive-go/web"
)

func main() {
	cfgPath := flag.String("config", "", "Scenario TOML file (defaults apply if empty)")
	trackPath := flag.String("track", "", "Track image, overrides the config")
	autopilot := flag.Bool("autopilot", true, "Start with the fuzzy autopilot engaged")
	recordPath := flag.String("record", "", "Record the run to a binary log")
	httpPort := flag.Int("http", 0, "Serve the live viz on this port (0 = off)")
	distDir := flag.String("web", "", "Static frontend directory for the viz")
	ticks := flag.Int64("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = sim.LoadConfig(*cfgPath)
		if err != nil {
			log.Fatalf("Load config failed: %v", err)
		}
	}
	if *trackPath != "" {
		cfg.Track.Image = *trackPath
	}
	if cfg.Track.Image == "" {
		log.Fatal("--track or track.image in the config required")
	}

	field, err := track.Load(cfg.Track.Image, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatalf("Load track failed: %v", err)
	}

	world, err := sim.NewWorld(cfg, field)
	if err != nil {
		log.Fatalf("World setup failed: %v", err)
	}
	world.SetAutopilot(*autopilot)

	if *recordPath != "" {
		w, err := binlog.NewWriter(*recordPath, cfg.Sensor.Rays, cfg.TickHz)
		if err != nil {
			log.Fatalf("Open record log failed: %v", err)
		}
		defer w.Close()
		world.AddSink(func(f sim.Frame) {
			rec := binlog.Record{
				Seq:       uint32(f.Tick),
				TSMs:      f.TS,
				Autopilot: f.Autopilot,
				X:         f.X,
				Y:         f.Y,
				Heading:   f.Heading,
				Steering:  f.Steering,
				Speed:     f.Speed,
				Distances: f.Distances,
			}
			if err := w.WriteRecord(rec); err != nil {
				log.Printf("Record write failed: %v", err)
			}
		})
		log.Printf("Recording to %s", *recordPath)
	}

	if *httpPort > 0 {
		srv := web.NewServer()
		go srv.Start(*httpPort, *distDir, cfg.Track.Image)
		world.AddSink(func(f sim.Frame) {
			b, err := json.Marshal(f)
			if err != nil {
				return
			}
			srv.Hub.Broadcast(b)
		})
	}

	// Manual mode input: one command per stdin line.
	// a = toggle autopilot, l/r = turn, f/b = forward/reverse.
	go readCommands(world.Commands())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Print("Stopping...")
		world.Stop()
	}()

	if err := world.Run(*ticks); err != nil {
		log.Fatalf("Sim failed: %v", err)
	}
	v := world.Vehicle()
	log.Printf("Final pose: x=%.1f y=%.1f heading=%.1f", v.X, v.Y, v.Heading)
}

func readCommands(cmds chan<- sim.Command) {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		var cmd sim.Command
		switch sc.Text() {
		case "a":
			cmd = sim.CmdToggleAutopilot
		case "l":
			cmd = sim.CmdTurnLeft
		case "r":
			cmd = sim.CmdTurnRight
		case "f":
			cmd = sim.CmdForward
		case "b":
			cmd = sim.CmdReverse
		default:
			continue
		}
		select {
		case cmds <- cmd:
		default:
			// sim loop backed up, drop the input
		}
	}
}
