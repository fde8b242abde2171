package core_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/vovakirdan/gravitate/internal/games/gravitate/core"
)

func sortedPositions(ps []core.Pos) []core.Pos {
	out := append([]core.Pos(nil), ps...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestFindRegion(t *testing.T) {
	g := mustGrid(t,
		"AAB",
		"ABB",
		"CCB",
	)

	testCases := []struct {
		name  string
		start core.Pos
		want  []core.Pos
	}{
		{"red corner", core.P(0, 0), []core.Pos{core.P(0, 0), core.P(1, 0), core.P(0, 1)}},
		{"green snake", core.P(2, 2), []core.Pos{core.P(2, 0), core.P(1, 1), core.P(2, 1), core.P(2, 2)}},
		{"yellow pair", core.P(1, 2), []core.Pos{core.P(0, 2), core.P(1, 2)}},
		{"off board", core.P(3, 0), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sortedPositions(core.FindRegion(g, tc.start))
			want := sortedPositions(tc.want)
			if len(got) != len(want) {
				t.Fatalf("FindRegion(%v) = %v, want %v", tc.start, got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("FindRegion(%v) = %v, want %v", tc.start, got, want)
				}
			}
		})
	}
}

func TestFindRegionEmptyStart(t *testing.T) {
	g := mustGrid(t,
		"A.",
		"AA",
	)
	if got := core.FindRegion(g, core.P(1, 0)); len(got) != 0 {
		t.Errorf("expected empty region, got %v", got)
	}
}

// Every member shares the start color, and every same-colored neighbor of a
// member is itself a member.
func TestFindRegionIsMaximal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	palette, _ := core.SelectPalette(4, rng)
	g := core.NewGrid(core.Size{Columns: 12, Rows: 10})
	g.Populate(palette, rng)

	for _, start := range g.Positions() {
		region := core.FindRegion(g, start)
		color := g.Get(start).Color
		in := make(map[core.Pos]bool, len(region))
		for _, p := range region {
			if in[p] {
				t.Fatalf("region from %v contains %v twice", start, p)
			}
			in[p] = true
		}
		if !in[start] {
			t.Fatalf("region from %v does not contain its start", start)
		}
		for _, p := range region {
			if g.Get(p).Color != color {
				t.Fatalf("region from %v contains %v of another color", start, p)
			}
			for _, n := range g.Neighbours(p) {
				if g.Get(n).Color == color && !in[n] {
					t.Fatalf("region from %v misses same-colored neighbor %v", start, n)
				}
			}
		}
	}
}

func TestIsLegal(t *testing.T) {
	g := mustGrid(t,
		"AB.",
		"CBD",
	)

	testCases := []struct {
		pos  core.Pos
		want bool
	}{
		{core.P(0, 0), false},
		{core.P(1, 0), true},
		{core.P(1, 1), true},
		{core.P(2, 0), false},
		{core.P(2, 1), false},
		{core.P(0, 1), false},
		{core.P(9, 9), false},
	}

	for _, tc := range testCases {
		if got := core.IsLegal(g, tc.pos); got != tc.want {
			t.Errorf("IsLegal(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

// A legal position always yields a region of at least two tiles.
func TestLegalImpliesRegionOfTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	palette, _ := core.SelectPalette(6, rng)
	g := core.NewGrid(core.Size{Columns: 9, Rows: 9})
	g.Populate(palette, rng)

	for _, p := range g.Positions() {
		n := len(core.FindRegion(g, p))
		if core.IsLegal(g, p) != (n >= 2) {
			t.Errorf("at %v: IsLegal=%v but region size %d", p, core.IsLegal(g, p), n)
		}
	}
}
