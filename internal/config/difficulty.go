package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset.
// The empty string means "leave the config as loaded".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale holds multipliers applied to the loaded config.
type presetScale struct {
	paddleWidth float64
	launch      float64
	maxSpeed    float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {paddleWidth: 1.4, launch: 0.8, maxSpeed: 0.85},
	DifficultyNormal: {paddleWidth: 1.0, launch: 1.0, maxSpeed: 1.0},
	DifficultyHard:   {paddleWidth: 0.7, launch: 1.3, maxSpeed: 1.3},
}

// ApplyBambooPreset modifies the config based on a difficulty preset.
// The paddle never grows past half the arena width.
func ApplyBambooPreset(cfg *BambooConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Paddle.Width = min(cfg.Paddle.Width*scale.paddleWidth, cfg.Arena.Width/2)
	cfg.Ball.LaunchImpulse *= scale.launch
	cfg.Ball.MaxSpeed *= scale.maxSpeed
}
