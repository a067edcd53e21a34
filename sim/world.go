package sim

import (
	"fmt"
	"log"
	"time"

	"drive-go/control"
	"drive-go/sensor"
	"drive-go/track"
)

// Command is one input event for the sim loop, replacing direct keyboard
// polling. Manual commands apply on the next tick; in autopilot mode only the
// toggle has any effect.
type Command int

const (
	CmdToggleAutopilot Command = iota
	CmdTurnLeft
	CmdTurnRight
	CmdForward
	CmdReverse
)

// Frame is one tick of telemetry, pushed to every sink (recorder, web hub).
type Frame struct {
	Tick      int64            `json:"tick"`
	TS        int64            `json:"ts"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	Heading   float64          `json:"heading"`
	Autopilot bool             `json:"autopilot"`
	Distances []float64        `json:"distances,omitempty"`
	Rays      []sensor.Segment `json:"rays,omitempty"`
	Steering  float64          `json:"steering"`
	Speed     float64          `json:"speed"`
}

// World drives the simulation: one controller, one vehicle, one occupancy
// field, ticked at a fixed rate.
type World struct {
	cfg     Config
	field   *track.Field
	ctrl    *control.Controller
	car     Vehicle
	onAuto  bool
	cmds    chan Command
	sinks   []func(Frame)
	tick    int64
	running bool
}

func NewWorld(cfg Config, field *track.Field) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctrl, err := control.NewController(control.Config{
		RayCount:  cfg.Sensor.Rays,
		SpreadDeg: cfg.Sensor.SpreadDeg,
		MaxRange:  cfg.Sensor.MaxRange,
		Speed:     cfg.Vehicle.Speed,
	})
	if err != nil {
		return nil, err
	}
	car := Vehicle{
		X:       cfg.Vehicle.X,
		Y:       cfg.Vehicle.Y,
		Heading: cfg.Vehicle.Heading,
		Speed:   cfg.Vehicle.Speed,
	}
	if car.X == 0 && car.Y == 0 {
		w, h := field.Size()
		car.X = float64(w) / 2
		car.Y = float64(h) / 2
	}
	return &World{
		cfg:   cfg,
		field: field,
		ctrl:  ctrl,
		car:   car,
		cmds:  make(chan Command, 64),
	}, nil
}

// AddSink registers a per-frame consumer. Not safe to call once Run started.
func (w *World) AddSink(fn func(Frame)) {
	w.sinks = append(w.sinks, fn)
}

// Commands returns the input channel for the sim loop.
func (w *World) Commands() chan<- Command {
	return w.cmds
}

// Vehicle returns the current pose.
func (w *World) Vehicle() Vehicle {
	return w.car
}

// SetAutopilot switches modes directly (the toggle command does the same).
func (w *World) SetAutopilot(on bool) {
	w.onAuto = on
}

// Step runs exactly one tick: drain pending commands, update the vehicle
// (manually or through the controller), and fan the frame out.
func (w *World) Step() (Frame, error) {
	w.drainCommands()
	w.tick++

	frame := Frame{
		Tick:      w.tick,
		TS:        time.Now().UnixMilli(),
		Autopilot: w.onAuto,
		Speed:     w.car.Speed,
	}

	if w.onAuto {
		distances, segs := w.ctrl.Sense(w.car.X, w.car.Y, w.car.Heading, w.field.Blocked)
		dec, err := w.ctrl.Decide(distances)
		if err != nil {
			return Frame{}, fmt.Errorf("tick %d: %w", w.tick, err)
		}
		w.car.Advance(dec.Steering, dec.Speed)
		frame.Distances = distances
		frame.Rays = segs
		frame.Steering = dec.Steering
		frame.Speed = dec.Speed
	}

	frame.X = w.car.X
	frame.Y = w.car.Y
	frame.Heading = w.car.Heading

	for _, sink := range w.sinks {
		sink(frame)
	}
	return frame, nil
}

func (w *World) drainCommands() {
	for {
		select {
		case cmd := <-w.cmds:
			switch cmd {
			case CmdToggleAutopilot:
				w.onAuto = !w.onAuto
			case CmdTurnLeft:
				if !w.onAuto {
					w.car.Turn(manualTurnDeg)
				}
			case CmdTurnRight:
				if !w.onAuto {
					w.car.Turn(-manualTurnDeg)
				}
			case CmdForward:
				if !w.onAuto {
					w.car.Drive(1)
				}
			case CmdReverse:
				if !w.onAuto {
					w.car.Drive(-1)
				}
			}
		default:
			return
		}
	}
}

// Run ticks the world at the configured rate until Stop. maxTicks of 0 runs
// until stopped.
func (w *World) Run(maxTicks int64) error {
	w.running = true
	interval := time.Second / time.Duration(w.cfg.TickHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Sim running at %d Hz (autopilot=%v)", w.cfg.TickHz, w.onAuto)
	for w.running {
		<-ticker.C
		if _, err := w.Step(); err != nil {
			return err
		}
		if maxTicks > 0 && w.tick >= maxTicks {
			break
		}
	}
	return nil
}

func (w *World) Stop() {
	w.running = false
}
