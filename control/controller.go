package control

import (
	"fmt"

	"drive-go/fuzzy"
	"drive-go/sensor"
)

// Config fixes the controller geometry at construction time. Not
// hot-reloadable.
type Config struct {
	RayCount  int
	SpreadDeg float64
	MaxRange  float64
	Speed     float64
}

// DefaultConfig mirrors the reference tuning: 7 rays over a 90 degree fan,
// 600 unit range, constant speed 10.
func DefaultConfig() Config {
	return Config{RayCount: 7, SpreadDeg: 90, MaxRange: 600, Speed: 10}
}

func (c Config) validate() error {
	if c.RayCount < 3 {
		return fmt.Errorf("ray count %d below minimum 3", c.RayCount)
	}
	if c.RayCount%2 == 0 {
		return fmt.Errorf("ray count %d is even, center ray undefined", c.RayCount)
	}
	if c.MaxRange <= 0 {
		return fmt.Errorf("max range %g must be positive", c.MaxRange)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed %g must be positive", c.Speed)
	}
	return nil
}

// Decision is one tick's output: a steering correction in [-90, 90] degrees
// and a speed. Speed is a constant pass-through; the fuzzy system controls
// heading only.
type Decision struct {
	Steering float64
	Speed    float64
}

// Controller runs one decision cycle per tick: sense, infer, decide. It owns
// its engine and ray array exclusively and carries no state between calls.
type Controller struct {
	cfg    Config
	engine *fuzzy.Engine
	rays   *sensor.Array
}

func NewController(cfg Config) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("controller config: %w", err)
	}
	engine, err := fuzzy.NewEngine(cfg.RayCount, cfg.MaxRange)
	if err != nil {
		return nil, err
	}
	rays, err := sensor.NewArray(cfg.RayCount, cfg.SpreadDeg, cfg.MaxRange)
	if err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg, engine: engine, rays: rays}, nil
}

// Config returns the construction-time configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Sense casts the ray fan from the vehicle's front point (one speed step
// ahead of the center) and returns the distances plus the segments for the
// visualization overlay.
func (c *Controller) Sense(x, y, heading float64, blocked sensor.Blocked) ([]float64, []sensor.Segment) {
	return c.rays.Cast(x, y, heading, c.cfg.Speed, blocked)
}

// Decide converts one distance vector into a steering correction and speed.
// Pure and deterministic: the same input always yields the same output.
func (c *Controller) Decide(distances []float64) (Decision, error) {
	steering, err := c.engine.Evaluate(distances)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Steering: steering, Speed: c.cfg.Speed}, nil
}
