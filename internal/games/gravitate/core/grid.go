package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cell is one board square. The zero value is empty.
type Cell struct {
	Filled bool
	Color  Color
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Tile returns a filled cell of the given color.
func Tile(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Grid is the board. Cells are stored row-major: index = y*Columns + x.
// The cell slice always has exactly Columns*Rows entries.
type Grid struct {
	size  Size
	cells []Cell
}

// NewGrid returns an all-empty grid.
func NewGrid(size Size) *Grid {
	if size.Columns < 0 {
		size.Columns = 0
	}
	if size.Rows < 0 {
		size.Rows = 0
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size.Area()),
	}
}

// ParseGrid builds a grid from ASCII rows, using Color.Char glyphs for tiles
// and '.' for empty cells. All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(Size{}), nil
	}
	width := len([]rune(rows[0]))
	g := NewGrid(Size{Columns: width, Rows: len(rows)})
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			if r == '.' {
				continue
			}
			c, ok := ParseColorChar(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", y, x, r)
			}
			g.Set(P(x, y), Tile(c))
		}
	}
	return g, nil
}

// Size returns the board dimensions.
func (g *Grid) Size() Size {
	return g.size
}

func (g *Grid) index(p Pos) int {
	return p.Y*g.size.Columns + p.X
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.size.Columns && p.Y >= 0 && p.Y < g.size.Rows
}

// Get returns the cell at p, or an empty cell when p is off the board.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		return Empty()
	}
	return g.cells[g.index(p)]
}

// Filled reports whether p holds a tile.
func (g *Grid) Filled(p Pos) bool {
	return g.Get(p).Filled
}

// Set stores cell at p. Off-board writes are ignored.
func (g *Grid) Set(p Pos, cell Cell) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = cell
	}
}

// Clear empties the cell at p.
func (g *Grid) Clear(p Pos) {
	g.Set(p, Empty())
}

// Populate fills every cell with a color drawn uniformly from palette.
func (g *Grid) Populate(palette Palette, rng *rand.Rand) {
	if len(palette) == 0 {
		return
	}
	for i := range g.cells {
		g.cells[i] = Tile(palette.Random(rng))
	}
}

// Neighbours returns the in-bounds orthogonal neighbors of p in
// Directions order.
func (g *Grid) Neighbours(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range Directions {
		n := p.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Positions returns every board position, row by row.
func (g *Grid) Positions() []Pos {
	out := make([]Pos, 0, len(g.cells))
	for y := 0; y < g.size.Rows; y++ {
		for x := 0; x < g.size.Columns; x++ {
			out = append(out, P(x, y))
		}
	}
	return out
}

// FilledCount returns the number of tiles on the board.
func (g *Grid) FilledCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell.Filled {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no tiles remain.
func (g *Grid) IsEmpty() bool {
	return g.FilledCount() == 0
}

// CountByColor counts tiles per color. Dimmed tiles are counted as-is.
func (g *Grid) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, cell := range g.cells {
		if cell.Filled {
			counts[cell.Color]++
		}
	}
	return counts
}

// DarkenAll dims every tile.
func (g *Grid) DarkenAll() {
	for i, cell := range g.cells {
		if cell.Filled {
			g.cells[i].Color = cell.Color.Darker()
		}
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as ASCII rows in the ParseGrid format.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size.Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.size.Columns; x++ {
			cell := g.Get(P(x, y))
			if !cell.Filled {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(cell.Color.Char())
		}
	}
	return sb.String()
}
