package core

import (
	"math"
	"math/bits"
)

// ScoreRule selects the scoring formula.
type ScoreRule int

const (
	// ScoreClassic awards n^(maxColors-2) for a region of n tiles.
	ScoreClassic ScoreRule = iota
	// ScoreBonus adds floor(sqrt(columns*rows)) to the classic award.
	ScoreBonus
)

func (r ScoreRule) String() string {
	switch r {
	case ScoreClassic:
		return "classic"
	case ScoreBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// ParseScoreRule converts a rule name. Unknown names report false.
func ParseScoreRule(s string) (ScoreRule, bool) {
	switch s {
	case "classic", "":
		return ScoreClassic, true
	case "bonus":
		return ScoreBonus, true
	default:
		return ScoreClassic, false
	}
}

// ScoreDelta returns the points for eliminating a region of n tiles.
// Results saturate at math.MaxUint64.
func ScoreDelta(n, maxColors int, size Size, rule ScoreRule) uint64 {
	if n <= 0 {
		return 0
	}
	exp := maxColors - 2
	if exp < 0 {
		exp = 0
	}
	delta := powSat(uint64(n), exp)
	if rule == ScoreBonus {
		delta = addSat(delta, uint64(math.Sqrt(float64(size.Area()))))
	}
	return delta
}

func powSat(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return math.MaxUint64
		}
		result = lo
	}
	return result
}

func addSat(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
