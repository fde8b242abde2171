package config

import (
	_ "embed"
)

//go:embed defaults/gravitate.yaml
var defaultGravitateYAML []byte

// DefaultGravitateConfig returns the default Gravitate configuration.
func DefaultGravitateConfig() GravitateConfig {
	return GravitateConfig{
		Board: BoardConfig{
			Columns:   9,
			Rows:      9,
			MaxColors: 4,
			DelayMs:   250,
		},
		Scoring: ScoringConfig{
			Rule: RuleClassic,
		},
	}
}
