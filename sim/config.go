package sim

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the scenario file. Everything is fixed for the lifetime of the
// run; there is no hot reload.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Track   TrackConfig   `toml:"track"`
	Vehicle VehicleConfig `toml:"vehicle"`
	Sensor  SensorConfig  `toml:"sensor"`
	TickHz  int           `toml:"tick_hz"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TrackConfig struct {
	Image string `toml:"image"`
}

type VehicleConfig struct {
	// Zero X/Y means "window center".
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Heading float64 `toml:"heading"`
	Speed   float64 `toml:"speed"`
}

type SensorConfig struct {
	Rays      int     `toml:"rays"`
	SpreadDeg float64 `toml:"spread_deg"`
	MaxRange  float64 `toml:"max_range"`
}

// DefaultConfig matches the reference scenario: 1000x800 window, 7 rays over
// 90 degrees, 600 range, speed 10, 15 ticks per second.
func DefaultConfig() Config {
	return Config{
		Window:  WindowConfig{Width: 1000, Height: 800},
		Vehicle: VehicleConfig{Speed: 10},
		Sensor:  SensorConfig{Rays: 7, SpreadDeg: 90, MaxRange: 600},
		TickHz:  15,
	}
}

// LoadConfig reads a TOML scenario over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.TickHz <= 0 {
		return fmt.Errorf("tick_hz %d must be positive", c.TickHz)
	}
	if c.Sensor.Rays < 3 {
		return fmt.Errorf("sensor rays %d below minimum 3", c.Sensor.Rays)
	}
	if c.Sensor.Rays%2 == 0 {
		return fmt.Errorf("sensor rays %d is even, center ray undefined", c.Sensor.Rays)
	}
	if c.Sensor.MaxRange <= 0 {
		return fmt.Errorf("sensor max_range %g must be positive", c.Sensor.MaxRange)
	}
	if c.Vehicle.Speed <= 0 {
		return fmt.Errorf("vehicle speed %g must be positive", c.Vehicle.Speed)
	}
	return nil
}
