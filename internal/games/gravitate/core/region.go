package core

// FindRegion returns the maximal 4-connected group of same-colored tiles that
// contains start. An empty or off-board start yields nil.
//
// The walk uses an explicit stack and a visited slice sized to the board, so
// region size is bounded only by the board area.
func FindRegion(g *Grid, start Pos) []Pos {
	first := g.Get(start)
	if !first.Filled {
		return nil
	}

	visited := make([]bool, g.size.Area())
	visited[g.index(start)] = true
	stack := []Pos{start}
	var region []Pos

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		for _, d := range Directions {
			n := p.Step(d)
			if !g.InBounds(n) {
				continue
			}
			i := g.index(n)
			if visited[i] {
				continue
			}
			cell := g.cells[i]
			if !cell.Filled || cell.Color != first.Color {
				continue
			}
			visited[i] = true
			stack = append(stack, n)
		}
	}
	return region
}

// IsLegal reports whether selecting p would eliminate anything: the cell must
// hold a tile with at least one orthogonal neighbor of the same color.
func IsLegal(g *Grid, p Pos) bool {
	cell := g.Get(p)
	if !cell.Filled {
		return false
	}
	for _, d := range Directions {
		n := g.Get(p.Step(d))
		if n.Filled && n.Color == cell.Color {
			return true
		}
	}
	return false
}

// HasLegalMove reports whether any cell on the board is a legal selection.
func HasLegalMove(g *Grid) bool {
	for _, p := range g.Positions() {
		if IsLegal(g, p) {
			return true
		}
	}
	return false
}
