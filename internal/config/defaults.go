package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:   550,
			PaddleSpeed: 500,
			AISpeed:     250,
		},
		Input: PongInput{
			RepeatDelayMillis: 600, // Longer than the initial auto-repeat delay of most terminals
			HoldMillis:        150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
