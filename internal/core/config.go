package core

import "time"

// RuntimeConfig is what a session needs to run: the tick rate it is paced at,
// the seed for deterministic piece order, and the tick counts between timed
// events.
type RuntimeConfig struct {
	TickRate       int   // Simulation ticks per second (default 60)
	Seed           int64 // RNG seed for deterministic gameplay
	DescendEvery   int   // Ticks between gravity steps
	SoftDropEvery  int   // Ticks between descends while soft-dropping
	ClearStepEvery int   // Ticks between clear-animation cells
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:       60,
		Seed:           0, // 0 means use current time in platform layer
		DescendEvery:   30,
		SoftDropEvery:  2,
		ClearStepEvery: 2,
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Normalized returns a copy that is safe to run: a non-positive tick rate
// falls back to the default and every tick count is raised to at least 1.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	d := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	c.DescendEvery = max(c.DescendEvery, 1)
	c.SoftDropEvery = max(c.SoftDropEvery, 1)
	c.ClearStepEvery = max(c.ClearStepEvery, 1)
	return c
}
