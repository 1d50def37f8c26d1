package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists every known preset, easiest first.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty parses a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (expected easy, normal or hard)", ErrInvalidConfig, name)
	}
}

// AISpeedScale returns the multiplier applied to the computer paddle speed.
func AISpeedScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// Only the computer gets faster or slower; the ball and the player are untouched.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	cfg.Physics.AISpeed *= AISpeedScale(preset)
}
