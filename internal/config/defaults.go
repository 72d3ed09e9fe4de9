package config

import (
	_ "embed"
)

//go:embed defaults/pipebird.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:  80,
			Height: 50,
		},
		Timing: Timing{
			FrameDurationMs: 75,
		},
		Physics: Physics{
			Gravity:      0.2,
			MaxVelocity:  2.0,
			FlapVelocity: -2.0,
		},
		Player: Player{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: Obstacles{
			BaseGapSize:  20,
			MinGapSize:   2,
			GapCenterMin: 10,
			GapCenterMax: 40,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
