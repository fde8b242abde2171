// Package gravitate provides the Gravitate tile puzzle for the platform.
// Clicking or activating a group of two or more same-colored tiles removes
// it; the remaining tiles then drift toward the center of the board.
package gravitate

import (
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gravitate/internal/config"
	platformcore "github.com/vovakirdan/gravitate/internal/core"
	"github.com/vovakirdan/gravitate/internal/games/gravitate/core"
	"github.com/vovakirdan/gravitate/internal/registry"
)

// Game IDs.
const (
	ClassicID = "gravitate"
	BonusID   = "gravitate_bonus"
)

// Package-level configuration shared by every instance.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultGravitateConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the board configuration used by the next Reset.
func SetConfig(cfg config.GravitateConfig) {
	settingsMu.Lock()
	settings = cfg
	settingsMu.Unlock()
}

// Config returns the board configuration used by Reset.
func Config() config.GravitateConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// SetLogger routes game logs to l. Logs are discarded by default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(BonusID, func() registry.Game {
		return NewBonus()
	})
}

// Game adapts the engine to the platform's fixed-tick loop.
type Game struct {
	id    string
	title string
	// rule overrides the configured scoring rule when set.
	rule *core.ScoreRule

	rng    *rand.Rand
	engine *core.Game
	runID  string

	screenW  int
	screenH  int
	tickRate int

	// wait counts ticks until the engine's pending phase runs.
	wait int

	layout layout
}

// New creates a game scored by the configured rule.
func New() *Game {
	return &Game{id: ClassicID, title: "Gravitate"}
}

// NewBonus creates a game that always uses the clear-bonus rule.
func NewBonus() *Game {
	rule := core.ScoreBonus
	return &Game{id: BonusID, title: "Gravitate (clear bonus)", rule: &rule}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset deals a new board from the package configuration.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	engine, err := g.newEngine(g.engineConfig(Config(), cfg.HighScore))
	if err != nil {
		logger.Error("cannot start a board", "error", err)
		return
	}
	g.engine = engine
	g.begin()
}

// newEngine starts an engine with ecfg, falling back to the default board
// when ecfg is rejected.
func (g *Game) newEngine(ecfg core.Config) (*core.Game, error) {
	engine, err := core.New(ecfg, g.rng)
	if err == nil {
		return engine, nil
	}
	logger.Error("invalid board config, using defaults", "error", err)

	fallback := core.DefaultConfig()
	fallback.HighScore = ecfg.HighScore
	fallback.Scoring = ecfg.Scoring
	return core.New(fallback, g.rng)
}

// engineConfig converts the board configuration for the engine.
func (g *Game) engineConfig(c config.GravitateConfig, high int) core.Config {
	rule, ok := core.ParseScoreRule(c.Scoring.Rule)
	if !ok {
		logger.Warn("unknown scoring rule, using classic", "rule", c.Scoring.Rule)
	}
	if g.rule != nil {
		rule = *g.rule
	}
	return core.Config{
		Size:      core.Size{Columns: c.Board.Columns, Rows: c.Board.Rows},
		MaxColors: c.Board.MaxColors,
		Delay:     c.Delay(),
		HighScore: highScore(high),
		Scoring:   rule,
	}
}

func highScore(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

// begin starts bookkeeping for the board the engine just dealt.
func (g *Game) begin() {
	g.runID = uuid.NewString()
	g.wait = 0
	g.drain()
	g.layout = newLayout(g.engine.Config().Size, g.screenW, g.screenH)

	ecfg := g.engine.Config()
	logger.Debug("new board",
		"run", g.runID,
		"size", ecfg.Size,
		"colors", ecfg.MaxColors,
		"scoring", ecfg.Scoring,
	)
}

// restart deals a new board with the same settings, keeping the high score.
func (g *Game) restart() {
	ecfg := g.engine.Config()
	ecfg.HighScore = g.engine.HighScore()
	if err := g.engine.NewGame(ecfg); err != nil {
		logger.Error("restart failed", "error", err)
		return
	}
	g.begin()
}

// Step handles this tick's input and runs the pending phase once its
// delay has elapsed.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	moves := []struct {
		action platformcore.Action
		dir    core.Direction
	}{
		{platformcore.ActionUp, core.DirUp},
		{platformcore.ActionDown, core.DirDown},
		{platformcore.ActionLeft, core.DirLeft},
		{platformcore.ActionRight, core.DirRight},
	}
	for _, m := range moves {
		if in.Has(m.action) {
			g.engine.MoveCursor(m.dir)
		}
	}

	if in.Has(platformcore.ActionConfirm) {
		if g.engine.ActivateCursor() {
			g.logSelection(g.engine.Cursor())
		}
	}

	for _, c := range in.Clicks {
		g.click(c.X, c.Y)
	}

	g.drain()
	g.advance()

	return platformcore.StepResult{State: g.State()}
}

// click selects the tile under screen position (x, y), if any.
func (g *Game) click(x, y int) {
	b := g.layout.board
	if g.layout.tooSmall || !b.Contains(x, y) {
		return
	}
	if g.engine.SelectAtPixel(x-b.X, y-b.Y, b.W, b.H) {
		g.logSelection(core.P((x-b.X)/g.layout.cellW, (y-b.Y)/g.layout.cellH))
	}
}

func (g *Game) logSelection(p core.Pos) {
	logger.Debug("selected",
		"pos", p,
		"tiles", len(g.engine.Region()),
		"delta", g.engine.LastDelta(),
	)
}

// advance runs every pending phase whose delay has elapsed.
func (g *Game) advance() {
	for {
		phase, _, ok := g.engine.Pending()
		if !ok {
			g.wait = 0
			return
		}
		if g.wait > 0 {
			g.wait--
			return
		}
		if _, _, ok := g.engine.Tick(phase); !ok {
			return
		}
		if phase == core.PhaseCompacting {
			res := g.engine.LastCompact()
			logger.Debug("compacted", "passes", res.Passes, "moves", res.Moves)
		}
		g.drain()
	}
}

// drain consumes engine events.
func (g *Game) drain() {
	for _, e := range g.engine.Events() {
		switch e := e.(type) {
		case core.PhaseRequestEvent:
			g.wait = g.ticks(e.Delay)
		case core.WonEvent:
			logger.Info("board cleared",
				"run", g.runID,
				"score", e.Score,
				"new_high_score", e.NewHighScore,
			)
		case core.GameOverEvent:
			logger.Info("no moves left",
				"run", g.runID,
				"score", e.Score,
				"remaining", g.engine.Grid().FilledCount(),
			)
		}
	}
}

// ticks converts a delay to a whole number of simulation ticks, rounding up.
func (g *Game) ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d*time.Duration(g.tickRate) + time.Second - 1) / time.Second)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	status := g.engine.Status()
	return platformcore.GameState{
		Score:    clampInt(g.engine.Score()),
		GameOver: status.Terminal(),
		Won:      status == core.StatusWon,
		Busy:     g.engine.Busy(),
	}
}

// Result describes the current run for score storage.
func (g *Game) Result() registry.Result {
	if g.engine == nil {
		return registry.Result{}
	}
	ecfg := g.engine.Config()
	return registry.Result{
		RunID:     g.runID,
		Score:     clampInt(g.engine.Score()),
		Won:       g.engine.Status() == core.StatusWon,
		Columns:   ecfg.Size.Columns,
		Rows:      ecfg.Size.Rows,
		MaxColors: ecfg.MaxColors,
	}
}

// Engine exposes the underlying controller.
func (g *Game) Engine() *core.Game {
	return g.engine
}

func clampInt(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
