package core

// Status is the overall game state.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Outcome is the result of evaluating a board after compaction.
type Outcome struct {
	Status    Status
	Remaining int
	Counts    map[Color]int
}

// Evaluate decides whether the board is won, lost, or still playable.
func Evaluate(g *Grid) Outcome {
	counts := g.CountByColor()
	remaining := 0
	for _, n := range counts {
		remaining += n
	}
	out := Outcome{Remaining: remaining, Counts: counts}

	switch {
	case remaining == 0:
		out.Status = StatusWon
	case !anyPair(counts) || !HasLegalMove(g):
		out.Status = StatusGameOver
	default:
		out.Status = StatusPlaying
	}
	return out
}

// anyPair reports whether some color has at least two tiles; without one no
// region of size two can exist.
func anyPair(counts map[Color]int) bool {
	for _, n := range counts {
		if n >= 2 {
			return true
		}
	}
	return false
}
