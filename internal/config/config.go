package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS      = 30
	DefaultDt       = 0.016
	DefaultDuration = 10.0
	DefaultTheme    = "minimal"
	DefaultLogLevel = "info"
	DefaultLogFile  = "stardrift.log"
)

// Config is the runtime configuration. Simulation constants are not
// configurable; this only covers how the game is run.
type Config struct {
	Seed     int64       `yaml:"seed"`
	FPS      int         `yaml:"fps"`
	Scene    string      `yaml:"scene"`
	Strict   bool        `yaml:"strict"`
	Theme    string      `yaml:"theme"`
	LogLevel string      `yaml:"log_level"`
	LogFile  string      `yaml:"log_file"`
	Sim      SimConfig   `yaml:"sim"`
	Script   []KeyAction `yaml:"script"`
}

// SimConfig drives headless runs.
type SimConfig struct {
	Dt        float64 `yaml:"dt"`
	Duration  float64 `yaml:"duration"`
	StopOnEnd bool    `yaml:"stop_on_end"`
}

// KeyAction presses or releases a key at a session time.
type KeyAction struct {
	At   float64 `yaml:"at"`
	Key  string  `yaml:"key"`
	Down bool    `yaml:"down"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
		Sim: SimConfig{
			Dt:        DefaultDt,
			Duration:  DefaultDuration,
			StopOnEnd: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the runner and the TUI cannot work with.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Sim.Dt <= 0 {
		return fmt.Errorf("sim.dt must be positive, got %f", c.Sim.Dt)
	}
	if c.Sim.Duration <= 0 {
		return fmt.Errorf("sim.duration must be positive, got %f", c.Sim.Duration)
	}
	for i, a := range c.Script {
		if a.At < 0 {
			return fmt.Errorf("script[%d]: negative time %f", i, a.At)
		}
		if !validKey(a.Key) {
			return fmt.Errorf("script[%d]: unknown key %q", i, a.Key)
		}
	}
	return nil
}

func validKey(k string) bool {
	switch k {
	case "w", "a", "s", "d", "r", "escape":
		return true
	}
	return false
}
