// Package config provides YAML configuration for blocchi: session timing,
// simulation defaults and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocchi/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the whole configuration file.
type Config struct {
	Timing TimingConfig `yaml:"timing"`
	Sim    SimConfig    `yaml:"sim"`
	Log    LogConfig    `yaml:"log"`
}

// TimingConfig defines how a session is paced, in ticks.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Ticks per second for the headless loop
	DescendEvery   int `yaml:"descend_every"`    // Ticks between gravity steps
	SoftDropEvery  int `yaml:"soft_drop_every"`  // Ticks between descends while soft-dropping
	ClearStepEvery int `yaml:"clear_step_every"` // Ticks between clear-animation cells
}

// SimConfig defines the defaults for headless simulation runs.
type SimConfig struct {
	Bot        string `yaml:"bot"`
	Games      int    `yaml:"games"`
	MaxTicks   int    `yaml:"max_ticks"`
	ThinkEvery int    `yaml:"think_every"` // Ticks between bot decisions
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	t := c.Timing
	switch {
	case t.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, t.TickRate)
	case t.DescendEvery <= 0:
		return fmt.Errorf("%w: timing.descend_every must be positive, got %d", ErrInvalidConfig, t.DescendEvery)
	case t.SoftDropEvery <= 0:
		return fmt.Errorf("%w: timing.soft_drop_every must be positive, got %d", ErrInvalidConfig, t.SoftDropEvery)
	case t.ClearStepEvery <= 0:
		return fmt.Errorf("%w: timing.clear_step_every must be positive, got %d", ErrInvalidConfig, t.ClearStepEvery)
	}

	s := c.Sim
	switch {
	case s.Bot == "":
		return fmt.Errorf("%w: sim.bot is empty", ErrInvalidConfig)
	case s.Games <= 0:
		return fmt.Errorf("%w: sim.games must be positive, got %d", ErrInvalidConfig, s.Games)
	case s.MaxTicks <= 0:
		return fmt.Errorf("%w: sim.max_ticks must be positive, got %d", ErrInvalidConfig, s.MaxTicks)
	case s.ThinkEvery <= 0:
		return fmt.Errorf("%w: sim.think_every must be positive, got %d", ErrInvalidConfig, s.ThinkEvery)
	}

	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the configured log level.
func (l LogConfig) ParseLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Runtime converts the timing section into a session runtime config.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate:       c.Timing.TickRate,
		Seed:           seed,
		DescendEvery:   c.Timing.DescendEvery,
		SoftDropEvery:  c.Timing.SoftDropEvery,
		ClearStepEvery: c.Timing.ClearStepEvery,
	}
}
