package core

import "math"

// sameColorBias lowers the effective distance of a destination that already
// touches a tile of the mover's color.
const sameColorBias = 0.1

// Ripple returns 0..n-1 ordered from the middle outward, alternating sides:
// Ripple(9) = [4 3 5 2 6 1 7 0 8].
func Ripple(n int) []int {
	if n <= 0 {
		return nil
	}
	middle := n / 2
	out := make([]int, 0, n)
	for i, j := middle, middle-1; j >= 0; i, j = i+1, j-1 {
		out = append(out, i, j)
	}
	if n%2 == 1 {
		out = append(out, n-1)
	}
	return out
}

// CompactResult summarizes one compaction.
type CompactResult struct {
	Passes int // sweeps run, including the final sweep with no moves
	Moves  int // single-cell tile moves performed
}

// Compactor pulls tiles toward the board center one cell at a time until no
// tile can move. It remembers where each tile came from for the lifetime of
// one compaction so a tile never steps straight back.
type Compactor struct {
	grid   *Grid
	cx, cy float64
	from   map[Pos]Pos // destination -> source of the latest move

	// OnMove, when set, is called after every single-cell move.
	OnMove func(src, dst Pos)
}

// NewCompactor prepares a compaction of g.
func NewCompactor(g *Grid) *Compactor {
	cx, cy := g.size.Center()
	return &Compactor{
		grid: g,
		cx:   cx,
		cy:   cy,
		from: make(map[Pos]Pos),
	}
}

// Compact runs a full compaction of g.
func Compact(g *Grid) CompactResult {
	return NewCompactor(g).Run()
}

// Run sweeps the board until a pass moves nothing. Every move brings a tile
// strictly closer to the center, so this always reaches a fixed point; the
// board area caps the passes regardless.
func (c *Compactor) Run() CompactResult {
	var res CompactResult
	limit := c.grid.size.Area()
	if limit < 1 {
		limit = 1
	}
	for res.Passes < limit {
		moved := c.Pass()
		res.Passes++
		res.Moves += moved
		if moved == 0 {
			break
		}
	}
	return res
}

// Pass performs one sweep in ripple order, columns outer and rows inner, and
// returns the number of tiles moved.
func (c *Compactor) Pass() int {
	moved := 0
	size := c.grid.size
	for _, x := range Ripple(size.Columns) {
		for _, y := range Ripple(size.Rows) {
			p := P(x, y)
			if !c.grid.Filled(p) {
				continue
			}
			if dest, ok := c.destination(p); ok {
				c.move(p, dest)
				moved++
			}
		}
	}
	return moved
}

// destination picks where the tile at p should go, if anywhere.
func (c *Compactor) destination(p Pos) (Pos, bool) {
	color := c.grid.Get(p).Color
	current := p.Distance(c.cx, c.cy)

	best := InvalidPos
	bestScore := math.Inf(1)
	for _, d := range Directions {
		q := p.Step(d)
		if !c.grid.InBounds(q) || c.grid.Filled(q) {
			continue
		}
		if src, ok := c.from[p]; ok && src == q {
			continue
		}
		if !c.anchored(q, p) {
			continue
		}
		raw := q.Distance(c.cx, c.cy)
		if raw >= current {
			continue
		}
		score := raw
		if c.touchesColor(q, p, color) {
			score -= sameColorBias
		}
		if score < bestScore {
			best, bestScore = q, score
		}
	}

	if !best.Valid() {
		return InvalidPos, false
	}
	return best, true
}

// anchored reports whether q has an occupied neighbor other than mover.
func (c *Compactor) anchored(q, mover Pos) bool {
	for _, d := range Directions {
		n := q.Step(d)
		if n != mover && c.grid.Filled(n) {
			return true
		}
	}
	return false
}

// touchesColor reports whether q has a neighbor of the given color other
// than mover.
func (c *Compactor) touchesColor(q, mover Pos, color Color) bool {
	for _, d := range Directions {
		n := q.Step(d)
		if n == mover {
			continue
		}
		cell := c.grid.Get(n)
		if cell.Filled && cell.Color == color {
			return true
		}
	}
	return false
}

func (c *Compactor) move(src, dst Pos) {
	c.grid.Set(dst, c.grid.Get(src))
	c.grid.Clear(src)
	delete(c.from, src)
	c.from[dst] = src
	if c.OnMove != nil {
		c.OnMove(src, dst)
	}
}
