package config

import "fmt"

// DifficultyPreset selects a board shape and color count.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the loaded config as-is
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return DifficultyFixed, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GravitateConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Columns, cfg.Board.Rows = 7, 7
		cfg.Board.MaxColors = 3
	case DifficultyNormal:
		cfg.Board.Columns, cfg.Board.Rows = 9, 9
		cfg.Board.MaxColors = 4
	case DifficultyHard:
		cfg.Board.Columns, cfg.Board.Rows = 12, 12
		cfg.Board.MaxColors = 6
	}
}
