// Package config loads tickerx runtime settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds configuration for a tickerx process.
type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Loop      LoopConfig      `yaml:"loop"`
	Log       LogConfig       `yaml:"log"`
	Inspect   InspectConfig   `yaml:"inspect"`
}

// SchedulerConfig sizes the scheduler.
type SchedulerConfig struct {
	Capacity    int  `yaml:"capacity"`     // initial slot count
	StartPaused bool `yaml:"start_paused"` // begin paused
}

// LoopConfig drives the realtime frame loop.
type LoopConfig struct {
	FrameRate        time.Duration `yaml:"frame_rate"`          // e.g. "16.667ms"
	FixedStep        bool          `yaml:"fixed_step"`          // dt = frame rate instead of wall time
	MaxPostsPerFrame int           `yaml:"max_posts_per_frame"` // mailbox bound
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// InspectConfig configures the HTTP inspector.
type InspectConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Scheduler: SchedulerConfig{Capacity: 1000},
		Loop: LoopConfig{
			FrameRate:        16667 * time.Microsecond,
			FixedStep:        true,
			MaxPostsPerFrame: 1000,
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Inspect: InspectConfig{Addr: "127.0.0.1:8088"},
	}
}

// Load reads path over Default(). An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Scheduler.Capacity < 1 {
		return fmt.Errorf("%w: scheduler.capacity must be positive, got %d", ErrInvalid, c.Scheduler.Capacity)
	}
	if c.Loop.FrameRate <= 0 {
		return fmt.Errorf("%w: loop.frame_rate must be positive, got %s", ErrInvalid, c.Loop.FrameRate)
	}
	if c.Loop.MaxPostsPerFrame < 1 {
		return fmt.Errorf("%w: loop.max_posts_per_frame must be positive, got %d", ErrInvalid, c.Loop.MaxPostsPerFrame)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
