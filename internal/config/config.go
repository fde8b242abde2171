// Package config provides YAML-based game configuration loading, difficulty
// presets and range clamping for Gravitate.
package config

import "time"

// GravitateConfig contains all configuration for a Gravitate game.
type GravitateConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the board dimensions, color count and animation pace.
type BoardConfig struct {
	Columns   int `yaml:"columns"`
	Rows      int `yaml:"rows"`
	MaxColors int `yaml:"max_colors"`
	DelayMs   int `yaml:"delay_ms"` // pause between elimination phases
}

// ScoringConfig selects the scoring formula: "classic" or "bonus".
type ScoringConfig struct {
	Rule string `yaml:"rule"`
}

// Delay returns the phase delay as a duration.
func (c GravitateConfig) Delay() time.Duration {
	return time.Duration(c.Board.DelayMs) * time.Millisecond
}
