package core

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is a step of the elimination sequence. The engine sits in PhaseIdle
// between moves; every other phase is entered once per elimination, in order.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEliminating
	PhaseDimming
	PhaseRemoving
	PhaseCompacting
	PhaseEvaluating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEliminating:
		return "eliminating"
	case PhaseDimming:
		return "dimming"
	case PhaseRemoving:
		return "removing"
	case PhaseCompacting:
		return "compacting"
	case PhaseEvaluating:
		return "evaluating"
	default:
		return "unknown"
	}
}

// Config holds the parameters of one game.
type Config struct {
	Size      Size
	MaxColors int
	Delay     time.Duration // pause between animated phases
	HighScore uint64
	Scoring   ScoreRule
}

// DefaultConfig returns the classic 9x9 board with four colors.
func DefaultConfig() Config {
	return Config{
		Size:      Size{Columns: 9, Rows: 9},
		MaxColors: 4,
		Delay:     250 * time.Millisecond,
		Scoring:   ScoreClassic,
	}
}

// Validate checks the config against the engine's limits.
func (c Config) Validate() error {
	if c.Size.Columns < 2 || c.Size.Rows < 2 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("board %s is smaller than 2x2", c.Size),
		}
	}
	if c.MaxColors < MinColors || c.MaxColors > MaxColors {
		return ValidationError{
			Code:    "INVALID_COLORS",
			Message: fmt.Sprintf("max colors %d outside [%d, %d]", c.MaxColors, MinColors, MaxColors),
		}
	}
	if c.Delay < 0 {
		return ValidationError{
			Code:    "INVALID_DELAY",
			Message: fmt.Sprintf("negative delay %s", c.Delay),
		}
	}
	return nil
}

// Game is the controller: it owns the board and runs the elimination
// sequence. It is not safe for concurrent use; the host serializes calls.
type Game struct {
	rng     *rand.Rand
	cfg     Config
	grid    *Grid
	palette Palette

	score        uint64
	highScore    uint64
	newHighScore bool
	status       Status

	phase     Phase
	next      Phase
	nextDelay time.Duration

	cursor      Pos
	region      []Pos
	lastDelta   uint64
	lastCompact CompactResult

	events []Event
}

// New creates a controller and starts a game with cfg.
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	g := &Game{rng: rng}
	if err := g.NewGame(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGame discards the current board and deals a fresh one. Score, cursor
// and status are reset; the high score is taken from cfg.
func (g *Game) NewGame(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	palette, err := SelectPalette(cfg.MaxColors, g.rng)
	if err != nil {
		return err
	}

	grid := NewGrid(cfg.Size)
	grid.Populate(palette, g.rng)

	g.cfg = cfg
	g.grid = grid
	g.palette = palette
	g.score = 0
	g.highScore = cfg.HighScore
	g.newHighScore = false
	g.status = StatusPlaying
	g.phase = PhaseIdle
	g.next = PhaseIdle
	g.nextDelay = 0
	g.cursor = InvalidPos
	g.region = nil
	g.lastDelta = 0
	g.lastCompact = CompactResult{}
	g.events = g.events[:0]

	g.emit(ScoreChangedEvent{Score: 0})
	g.emit(RedrawEvent{})
	return nil
}

// acceptsInput reports whether a selection may start now.
func (g *Game) acceptsInput() bool {
	return g.grid != nil && g.status == StatusPlaying && g.phase == PhaseIdle
}

// Load replaces the board with grid, keeping cfg's other settings. The
// palette becomes the set of colors present on grid. Used to replay a saved
// board.
func (g *Game) Load(cfg Config, grid *Grid) error {
	cfg.Size = grid.Size()
	if err := cfg.Validate(); err != nil {
		return err
	}
	var palette Palette
	for _, p := range grid.Positions() {
		cell := grid.Get(p)
		if cell.Filled && !palette.Contains(cell.Color) {
			palette = append(palette, cell.Color.Base())
		}
	}
	if err := g.NewGame(cfg); err != nil {
		return err
	}
	g.grid = grid.Clone()
	g.palette = palette
	return nil
}

// SelectAt starts an elimination at p. It returns false, changing nothing,
// when the game is not idle or p is not a legal selection.
func (g *Game) SelectAt(p Pos) bool {
	if !g.acceptsInput() || !IsLegal(g.grid, p) {
		return false
	}

	g.phase = PhaseEliminating
	g.region = FindRegion(g.grid, p)
	g.lastDelta = ScoreDelta(len(g.region), g.cfg.MaxColors, g.cfg.Size, g.cfg.Scoring)
	g.score = addSat(g.score, g.lastDelta)
	g.emit(ScoreChangedEvent{Score: g.score})

	g.request(PhaseDimming, 0)
	return true
}

// SelectAtPixel maps a point on a width x height drawing surface to a cell
// and selects it. Tile size is the floor of surface size over board size;
// points in the leftover margin are ignored.
func (g *Game) SelectAtPixel(x, y, width, height int) bool {
	if g.grid == nil || x < 0 || y < 0 {
		return false
	}
	size := g.grid.Size()
	tileW := width / size.Columns
	tileH := height / size.Rows
	if tileW <= 0 || tileH <= 0 {
		return false
	}
	p := P(x/tileW, y/tileH)
	if !g.grid.InBounds(p) {
		return false
	}
	return g.SelectAt(p)
}

// MoveCursor moves the keyboard cursor one cell in d, onto occupied cells
// only. The first call places the cursor at the board center instead.
// Moves are ignored unless the game is playing and idle.
func (g *Game) MoveCursor(d Direction) bool {
	if !g.acceptsInput() {
		return false
	}
	if !g.cursor.Valid() {
		g.cursor = g.grid.Size().CenterCell()
		g.emit(RedrawEvent{})
		return true
	}
	n := g.cursor.Step(d)
	if !g.grid.Filled(n) {
		return false
	}
	g.cursor = n
	g.emit(RedrawEvent{})
	return true
}

// ActivateCursor selects the cell under the cursor.
func (g *Game) ActivateCursor() bool {
	if !g.cursor.Valid() {
		return false
	}
	return g.SelectAt(g.cursor)
}

// Tick runs the phase previously requested through a PhaseRequestEvent and
// returns the phase that follows with its delay. ok is false when phase is
// not the one the engine is waiting for.
func (g *Game) Tick(phase Phase) (next Phase, delay time.Duration, ok bool) {
	if g.phase == PhaseIdle || phase != g.next {
		return g.next, g.nextDelay, false
	}
	g.phase = phase

	switch phase {
	case PhaseDimming:
		for _, p := range g.region {
			cell := g.grid.Get(p)
			cell.Color = cell.Color.Darker()
			g.grid.Set(p, cell)
		}
		g.emit(RedrawEvent{})
		g.request(PhaseRemoving, g.cfg.Delay)

	case PhaseRemoving:
		for _, p := range g.region {
			g.grid.Clear(p)
		}
		g.region = nil
		g.emit(RedrawEvent{})
		g.request(PhaseCompacting, g.cfg.Delay)

	case PhaseCompacting:
		g.lastCompact = Compact(g.grid)
		if g.cursor.Valid() && !g.grid.Filled(g.cursor) {
			g.cursor = InvalidPos
		}
		g.emit(RedrawEvent{})
		g.request(PhaseEvaluating, g.cfg.Delay)

	case PhaseEvaluating:
		g.evaluate()
	}

	return g.next, g.nextDelay, true
}

func (g *Game) evaluate() {
	g.phase = PhaseIdle
	g.next = PhaseIdle
	g.nextDelay = 0

	switch Evaluate(g.grid).Status {
	case StatusWon:
		g.status = StatusWon
		g.newHighScore = g.score > g.highScore
		if g.newHighScore {
			g.highScore = g.score
		}
		g.emit(WonEvent{Score: g.score, NewHighScore: g.newHighScore})
	case StatusGameOver:
		g.status = StatusGameOver
		g.grid.DarkenAll()
		g.emit(RedrawEvent{})
		g.emit(GameOverEvent{Score: g.score})
	}
}

// Settle runs every outstanding phase immediately, ignoring delays.
func (g *Game) Settle() {
	for g.phase != PhaseIdle {
		if _, _, ok := g.Tick(g.next); !ok {
			return
		}
	}
}

func (g *Game) request(p Phase, delay time.Duration) {
	g.next = p
	g.nextDelay = delay
	g.emit(PhaseRequestEvent{Phase: p, Delay: delay})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns and clears the pending events.
func (g *Game) Events() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// Pending returns the phase the engine is waiting to run and its delay.
// ok is false when the engine is idle.
func (g *Game) Pending() (phase Phase, delay time.Duration, ok bool) {
	if g.phase == PhaseIdle {
		return PhaseIdle, 0, false
	}
	return g.next, g.nextDelay, true
}

// Busy reports whether an elimination sequence is in progress.
func (g *Game) Busy() bool {
	return g.phase != PhaseIdle
}

func (g *Game) Grid() *Grid                { return g.grid }
func (g *Game) Palette() Palette           { return g.palette }
func (g *Game) Config() Config             { return g.cfg }
func (g *Game) Score() uint64              { return g.score }
func (g *Game) HighScore() uint64          { return g.highScore }
func (g *Game) NewHighScore() bool         { return g.newHighScore }
func (g *Game) Status() Status             { return g.status }
func (g *Game) Phase() Phase               { return g.phase }
func (g *Game) Cursor() Pos                { return g.cursor }
func (g *Game) Region() []Pos              { return g.region }
func (g *Game) LastDelta() uint64          { return g.lastDelta }
func (g *Game) LastCompact() CompactResult { return g.lastCompact }

// Snapshot is a read-only summary of the controller state.
type Snapshot struct {
	Status       Status
	Phase        Phase
	Score        uint64
	HighScore    uint64
	NewHighScore bool
	Cursor       Pos
	Size         Size
	Remaining    int
	Palette      Palette
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Status:       g.status,
		Phase:        g.phase,
		Score:        g.score,
		HighScore:    g.highScore,
		NewHighScore: g.newHighScore,
		Cursor:       g.cursor,
		Palette:      append(Palette(nil), g.palette...),
	}
	if g.grid != nil {
		s.Size = g.grid.Size()
		s.Remaining = g.grid.FilledCount()
	}
	return s
}
