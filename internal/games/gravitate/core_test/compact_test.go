package core_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/gravitate/internal/games/gravitate/core"
)

func TestRipple(t *testing.T) {
	testCases := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, []int{0}},
		{2, []int{1, 0}},
		{3, []int{1, 0, 2}},
		{8, []int{4, 3, 5, 2, 6, 1, 7, 0}},
		{9, []int{4, 3, 5, 2, 6, 1, 7, 0, 8}},
	}

	for _, tc := range testCases {
		got := core.Ripple(tc.n)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Ripple(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestRippleIsPermutation(t *testing.T) {
	for n := 1; n <= 40; n++ {
		got := core.Ripple(n)
		if len(got) != n {
			t.Fatalf("Ripple(%d) has %d entries", n, len(got))
		}
		seen := make([]bool, n)
		for _, i := range got {
			if i < 0 || i >= n || seen[i] {
				t.Fatalf("Ripple(%d) = %v is not a permutation", n, got)
			}
			seen[i] = true
		}
	}
}

func TestCompactIsolatedTileStays(t *testing.T) {
	g := mustGrid(t,
		"...",
		"...",
		"..A",
	)
	res := core.Compact(g)

	if res.Moves != 0 || res.Passes != 1 {
		t.Errorf("expected 0 moves in 1 pass, got %+v", res)
	}
	if got := g.String(); got != "...\n...\n..A" {
		t.Errorf("isolated tile moved:\n%s", got)
	}
}

func TestCompactMovesTowardCenter(t *testing.T) {
	g := mustGrid(t,
		"...",
		".A.",
		"..B",
	)
	res := core.Compact(g)

	if want := "...\n.AB\n..."; g.String() != want {
		t.Errorf("after Compact:\n%s\nwant:\n%s", g, want)
	}
	if res.Moves != 1 || res.Passes != 2 {
		t.Errorf("expected 1 move in 2 passes, got %+v", res)
	}
}

func TestCompactPrefersSameColorNeighbor(t *testing.T) {
	g := mustGrid(t,
		"...",
		".B.",
		"A.A",
	)
	res := core.Compact(g)

	// The left tile steps right to sit next to its twin rather than up.
	if want := "...\n.BA\n.A."; g.String() != want {
		t.Errorf("after Compact:\n%s\nwant:\n%s", g, want)
	}
	if res.Moves != 2 {
		t.Errorf("expected 2 moves, got %+v", res)
	}
}

func TestCompactCenterTileDoesNotMove(t *testing.T) {
	g := mustGrid(t,
		"...",
		".A.",
		"...",
	)
	if res := core.Compact(g); res.Moves != 0 {
		t.Errorf("lone center tile moved: %+v", res)
	}
}

func TestCompactRejectsEquidistantMove(t *testing.T) {
	// The top A could slide down next to its twin without getting closer
	// to the center; only the bottom A, which does get closer, moves.
	g := mustGrid(t,
		"....",
		"AB..",
		".B..",
		"A...",
	)
	res := core.Compact(g)

	if want := "....\nAB..\nAB..\n...."; g.String() != want {
		t.Errorf("after Compact:\n%s\nwant:\n%s", g, want)
	}
	if res.Moves != 1 || res.Passes != 2 {
		t.Errorf("expected 1 move in 2 passes, got %+v", res)
	}
}

// manhattanBudget is the most single-cell moves the tiles of g can make if
// each move strictly shortens the distance to the center.
func manhattanBudget(g *core.Grid) int {
	cx, cy := g.Size().Center()
	budget := 0.0
	for _, p := range g.Positions() {
		if g.Filled(p) {
			budget += math.Abs(float64(p.X)-cx) + math.Abs(float64(p.Y)-cy)
		}
	}
	return int(budget)
}

// Compaction after random eliminations conserves tiles per color, moves
// every tile strictly closer to the center and stops at a fixed point.
func TestCompactRandomBoards(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewSource(seed))
		palette, err := core.SelectPalette(3+int(seed%4), rng)
		if err != nil {
			t.Fatalf("SelectPalette failed: %v", err)
		}
		size := core.Size{Columns: 5 + int(seed%10), Rows: 5 + int(seed%9)}
		g := core.NewGrid(size)
		g.Populate(palette, rng)
		cx, cy := size.Center()

		for round := 0; round < 8; round++ {
			var legal []core.Pos
			for _, p := range g.Positions() {
				if core.IsLegal(g, p) {
					legal = append(legal, p)
				}
			}
			if len(legal) == 0 {
				break
			}
			for _, p := range core.FindRegion(g, legal[rng.Intn(len(legal))]) {
				g.Clear(p)
			}

			before := g.CountByColor()
			budget := manhattanBudget(g)

			c := core.NewCompactor(g)
			c.OnMove = func(src, dst core.Pos) {
				if dst.Distance(cx, cy) >= src.Distance(cx, cy) {
					t.Errorf("seed %d: move %v -> %v does not approach the center", seed, src, dst)
				}
			}
			res := c.Run()

			if moved := c.Pass(); moved != 0 {
				t.Fatalf("seed %d: no fixed point after %d passes, another pass moved %d", seed, res.Passes, moved)
			}
			if res.Moves > budget {
				t.Errorf("seed %d: %d moves exceed distance budget %d", seed, res.Moves, budget)
			}
			if bound := 2 * (size.Columns + size.Rows); res.Passes > bound {
				t.Errorf("seed %d: %d passes on %s, want at most %d", seed, res.Passes, size, bound)
			}
			if after := g.CountByColor(); !reflect.DeepEqual(before, after) {
				t.Fatalf("seed %d: counts changed from %v to %v", seed, before, after)
			}
		}
	}
}

func TestCompactorPassReportsMoves(t *testing.T) {
	g := mustGrid(t,
		"...",
		".A.",
		"..B",
	)
	c := core.NewCompactor(g)

	if moved := c.Pass(); moved != 1 {
		t.Errorf("first pass moved %d tiles, want 1", moved)
	}
	if moved := c.Pass(); moved != 0 {
		t.Errorf("second pass moved %d tiles, want 0", moved)
	}
}
