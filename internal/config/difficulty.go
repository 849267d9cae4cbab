package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyRunnerPreset adjusts scroll speed and its growth for a preset.
// Normal is the reference tuning; fixed keeps the initial speed forever.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	ref := DefaultRunnerConfig().Speed

	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = ref.Initial * 0.8
		cfg.Speed.Increment = ref.Increment * 0.5
	case DifficultyNormal:
		cfg.Speed = ref
	case DifficultyHard:
		cfg.Speed.Initial = ref.Initial * 1.25
		cfg.Speed.Increment = ref.Increment * 1.5
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
}
