package config

import (
	_ "embed"
)

//go:embed defaults/blocchi.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. The embedded
// defaults/blocchi.yaml carries the same values.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			TickRate:       60,
			DescendEvery:   30,
			SoftDropEvery:  2,
			ClearStepEvery: 2,
		},
		Sim: SimConfig{
			Bot:        "greedy",
			Games:      1,
			MaxTicks:   200000,
			ThinkEvery: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
