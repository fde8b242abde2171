package config

import (
	"fmt"

	"github.com/vovakirdan/gravitate/internal/core"
)

// Accepted ranges for board settings.
const (
	SizeMin    = 5
	SizeMax    = 30
	ColorsMin  = 3
	ColorsMax  = 22
	DelayMsMin = 0
	DelayMsMax = 1000
)

// Scoring rule names.
const (
	RuleClassic = "classic"
	RuleBonus   = "bonus"
)

// Clamp forces every setting into its accepted range and returns a
// description of each adjustment made.
func (c *GravitateConfig) Clamp() []string {
	var notes []string
	clampField := func(name string, v *int, lo, hi int) {
		if clamped := core.Clamp(*v, lo, hi); clamped != *v {
			notes = append(notes, fmt.Sprintf("%s %d out of range [%d, %d], using %d", name, *v, lo, hi, clamped))
			*v = clamped
		}
	}

	clampField("board.columns", &c.Board.Columns, SizeMin, SizeMax)
	clampField("board.rows", &c.Board.Rows, SizeMin, SizeMax)
	clampField("board.max_colors", &c.Board.MaxColors, ColorsMin, ColorsMax)
	clampField("board.delay_ms", &c.Board.DelayMs, DelayMsMin, DelayMsMax)

	switch c.Scoring.Rule {
	case RuleClassic, RuleBonus:
	case "":
		c.Scoring.Rule = RuleClassic
	default:
		notes = append(notes, fmt.Sprintf("scoring.rule %q unknown, using %s", c.Scoring.Rule, RuleClassic))
		c.Scoring.Rule = RuleClassic
	}
	return notes
}
