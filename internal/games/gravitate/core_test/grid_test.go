package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gravitate/internal/games/gravitate/core"
)

func mustGrid(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid(%q) failed: %v", rows, err)
	}
	return g
}

func TestNewGridIsEmpty(t *testing.T) {
	g := core.NewGrid(core.Size{Columns: 7, Rows: 5})

	if got := g.Size(); got.Columns != 7 || got.Rows != 5 {
		t.Errorf("expected 7x5 grid, got %s", got)
	}
	if n := g.FilledCount(); n != 0 {
		t.Errorf("expected empty grid, got %d tiles", n)
	}
	if len(g.Positions()) != 35 {
		t.Errorf("expected 35 positions, got %d", len(g.Positions()))
	}
}

func TestGridBounds(t *testing.T) {
	g := mustGrid(t,
		"AB",
		"CD",
	)

	testCases := []struct {
		pos      core.Pos
		inBounds bool
	}{
		{core.P(0, 0), true},
		{core.P(1, 1), true},
		{core.P(-1, 0), false},
		{core.P(0, -1), false},
		{core.P(2, 0), false},
		{core.P(0, 2), false},
		{core.InvalidPos, false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.pos); got != tc.inBounds {
			t.Errorf("InBounds(%v) = %v, want %v", tc.pos, got, tc.inBounds)
		}
		if !tc.inBounds && g.Get(tc.pos).Filled {
			t.Errorf("Get(%v) off the board returned a tile", tc.pos)
		}
	}

	before := g.Clone()
	g.Set(core.P(5, 5), core.Tile(core.ColorBlue))
	g.Set(core.P(-1, 0), core.Tile(core.ColorBlue))
	if !g.Equal(before) {
		t.Errorf("out-of-bounds Set modified the grid:\n%s", g)
	}
}

func TestGridSetAndClear(t *testing.T) {
	g := core.NewGrid(core.Size{Columns: 3, Rows: 3})
	p := core.P(1, 2)

	g.Set(p, core.Tile(core.ColorTeal))
	if cell := g.Get(p); !cell.Filled || cell.Color != core.ColorTeal {
		t.Errorf("after Set: got %+v", cell)
	}
	g.Clear(p)
	if g.Filled(p) {
		t.Errorf("after Clear: cell still filled")
	}
}

func TestPopulateFillsEveryCell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	palette, err := core.SelectPalette(5, rng)
	if err != nil {
		t.Fatalf("SelectPalette failed: %v", err)
	}

	g := core.NewGrid(core.Size{Columns: 9, Rows: 11})
	g.Populate(palette, rng)

	if n := g.FilledCount(); n != 99 {
		t.Fatalf("expected 99 tiles, got %d", n)
	}
	for _, p := range g.Positions() {
		if c := g.Get(p).Color; !palette.Contains(c) {
			t.Errorf("tile %v has color %v outside palette %v", p, c, palette)
		}
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	rows := []string{
		"A.c",
		".B1",
	}
	g := mustGrid(t, rows...)

	if got, want := g.String(), "A.c\n.B1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if cell := g.Get(core.P(2, 0)); !cell.Color.Dimmed() || cell.Color.Base() != core.ColorYellow {
		t.Errorf("expected dimmed yellow at (2,0), got %v", cell.Color)
	}
	if cell := g.Get(core.P(2, 1)); cell.Color != core.ColorTan {
		t.Errorf("expected tan at (2,1), got %v", cell.Color)
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := core.ParseGrid("AB", "A"); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := core.ParseGrid("A?"); err == nil {
		t.Error("expected error for unknown glyph")
	}
}

func TestCountByColor(t *testing.T) {
	g := mustGrid(t,
		"AAB",
		"C.B",
	)
	counts := g.CountByColor()

	want := map[core.Color]int{
		core.ColorRed:    2,
		core.ColorGreen:  2,
		core.ColorYellow: 1,
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d colors, got %v", len(want), counts)
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("count[%v] = %d, want %d", c, counts[c], n)
		}
	}
}

func TestColorDarker(t *testing.T) {
	c := core.ColorBlue
	d := c.Darker()

	if d == c {
		t.Fatal("Darker returned the same color")
	}
	if !d.Dimmed() || d.Base() != c {
		t.Errorf("Darker() = %v, want dimmed %v", d, c)
	}
	if d.Darker() != d {
		t.Error("Darker is not idempotent")
	}
	if d.Hex() == c.Hex() {
		t.Errorf("dimmed hex %s equals base hex", d.Hex())
	}
	if len(d.Hex()) != 7 || d.Hex()[0] != '#' {
		t.Errorf("unexpected hex format %q", d.Hex())
	}
}
