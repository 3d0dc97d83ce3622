// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Movement   MovementConfig   `yaml:"movement"`
	Camera     CameraConfig     `yaml:"camera"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SimulationConfig holds fixed-timestep settings.
type SimulationConfig struct {
	TickRate float32 `yaml:"tick_rate"` // physics ticks per second
}

// MovementConfig holds locomotion tuning.
type MovementConfig struct {
	MaxSpeed       float32 `yaml:"max_speed"`         // m/s
	TimeToMaxSpeed float32 `yaml:"time_to_max_speed"` // seconds from rest to max
	TurnTime       float32 `yaml:"turn_time"`         // seconds per heading change, 0 = instant
	TurnEpsilon    float32 `yaml:"turn_epsilon"`      // radians tolerated without a turn
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // degrees per mouse count
	MinPitch         float32 `yaml:"min_pitch"`         // degrees
	MaxPitch         float32 `yaml:"max_pitch"`         // degrees
	Distance         float32 `yaml:"distance"`
	MinDistance      float32 `yaml:"min_distance"`
	MaxDistance      float32 `yaml:"max_distance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
		},
		Movement: MovementConfig{
			MaxSpeed:       8,
			TimeToMaxSpeed: 0.35,
			TurnTime:       0.18,
			TurnEpsilon:    0.02,
		},
		Camera: CameraConfig{
			MouseSensitivity: 0.1,
			MinPitch:         10,
			MaxPitch:         75,
			Distance:         6,
			MinDistance:      2,
			MaxDistance:      20,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// minAccelTime is the floor applied to time_to_max_speed so the derived
// acceleration stays finite.
const minAccelTime = 1e-4

// Normalize clamps degenerate tuning values in place. The clamps are
// silent: these are tuning safeguards, not data-integrity errors.
func (c *Config) Normalize() {
	if c.Movement.MaxSpeed < 0 {
		c.Movement.MaxSpeed = 0
	}
	if c.Movement.TimeToMaxSpeed < minAccelTime {
		c.Movement.TimeToMaxSpeed = minAccelTime
	}
	if c.Movement.TurnTime < 0 {
		c.Movement.TurnTime = 0
	}
	if c.Movement.TurnEpsilon < 0 {
		c.Movement.TurnEpsilon = 0
	}
	if c.Camera.MinPitch > c.Camera.MaxPitch {
		c.Camera.MinPitch, c.Camera.MaxPitch = c.Camera.MaxPitch, c.Camera.MinPitch
	}
	if c.Camera.MinDistance > c.Camera.MaxDistance {
		c.Camera.MinDistance, c.Camera.MaxDistance = c.Camera.MaxDistance, c.Camera.MinDistance
	}
	if c.Simulation.TickRate < 1 {
		c.Simulation.TickRate = 1
	}
}
