// Package config provides YAML-based game configuration loading for Pipe Bird.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables for the game.
type Config struct {
	Screen    Screen    `yaml:"screen"`
	Timing    Timing    `yaml:"timing"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// Screen defines the playfield size in cells.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Timing defines the fixed physics step.
type Timing struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"` // Real time between gravity steps
}

// Physics defines the bird's vertical motion.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Velocity added per gravity step
	MaxVelocity  float64 `yaml:"max_velocity"`  // Terminal fall speed
	FlapVelocity float64 `yaml:"flap_velocity"` // Velocity after a flap (negative = up)
}

// Player defines where a fresh bird starts.
type Player struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// Obstacles defines pipe generation.
type Obstacles struct {
	BaseGapSize  int `yaml:"base_gap_size"`  // Gap size at score 0
	MinGapSize   int `yaml:"min_gap_size"`   // Gap size never shrinks below this
	GapCenterMin int `yaml:"gap_center_min"` // Inclusive
	GapCenterMax int `yaml:"gap_center_max"` // Exclusive
}

// Validate reports every setting that would make the game unplayable,
// joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Timing.FrameDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("frame_duration_ms must be positive, got %v", c.Timing.FrameDurationMs))
	}
	if c.Physics.Gravity <= 0 || c.Physics.MaxVelocity <= 0 {
		errs = append(errs, errors.New("gravity and max_velocity must be positive"))
	}
	if c.Physics.FlapVelocity >= 0 {
		errs = append(errs, fmt.Errorf("flap_velocity must be negative, got %v", c.Physics.FlapVelocity))
	}
	if c.Obstacles.GapCenterMax <= c.Obstacles.GapCenterMin {
		errs = append(errs, fmt.Errorf("gap center range [%d, %d) is empty", c.Obstacles.GapCenterMin, c.Obstacles.GapCenterMax))
	}
	if c.Obstacles.MinGapSize <= 0 || c.Obstacles.MinGapSize > c.Obstacles.BaseGapSize {
		errs = append(errs, fmt.Errorf("min_gap_size must be in (0, %d], got %d", c.Obstacles.BaseGapSize, c.Obstacles.MinGapSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
