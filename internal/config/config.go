// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the pong client and server.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// PongConfig contains all configuration for a pong session.
type PongConfig struct {
	Physics PongPhysics `yaml:"physics"`
	Input   PongInput   `yaml:"input"`
}

// PongPhysics defines the speed constants, in court units per second.
type PongPhysics struct {
	BallSpeed   float64 `yaml:"ball_speed"`
	PaddleSpeed float64 `yaml:"paddle_speed"`
	AISpeed     float64 `yaml:"ai_speed"`
}

// PongInput defines how terminal key presses are turned into held keys.
type PongInput struct {
	RepeatDelayMillis int `yaml:"repeat_delay_ms"` // A first press counts as held this long
	HoldMillis        int `yaml:"hold_ms"`         // A repeating key counts as held this long after its last repeat
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c PongConfig) Validate() error {
	switch {
	case c.Physics.BallSpeed <= 0:
		return fmt.Errorf("%w: physics.ball_speed must be positive, got %v", ErrInvalidConfig, c.Physics.BallSpeed)
	case c.Physics.PaddleSpeed <= 0:
		return fmt.Errorf("%w: physics.paddle_speed must be positive, got %v", ErrInvalidConfig, c.Physics.PaddleSpeed)
	case c.Physics.AISpeed <= 0:
		return fmt.Errorf("%w: physics.ai_speed must be positive, got %v", ErrInvalidConfig, c.Physics.AISpeed)
	case c.Input.RepeatDelayMillis <= 0:
		return fmt.Errorf("%w: input.repeat_delay_ms must be positive, got %d", ErrInvalidConfig, c.Input.RepeatDelayMillis)
	case c.Input.HoldMillis <= 0:
		return fmt.Errorf("%w: input.hold_ms must be positive, got %d", ErrInvalidConfig, c.Input.HoldMillis)
	}
	return nil
}
