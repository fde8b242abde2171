package gravitate

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/gravitate/internal/core"
	"github.com/vovakirdan/gravitate/internal/games/gravitate/core"
)

const (
	hudHeight    = 2 // title line and separator
	footerHeight = 1 // controls hint
	frame        = 1 // box border around the board
)

// layout places the board on the screen. Each tile covers cellW x cellH
// characters; cellW is twice cellH so tiles look square.
type layout struct {
	board    platformcore.Rect
	cellW    int
	cellH    int
	tooSmall bool
}

func newLayout(size core.Size, screenW, screenH int) layout {
	availW := screenW - 2*frame
	availH := screenH - hudHeight - footerHeight - 2*frame
	if size.Columns <= 0 || size.Rows <= 0 {
		return layout{tooSmall: true}
	}

	scale := min(availW/(2*size.Columns), availH/size.Rows)
	if scale < 1 {
		return layout{tooSmall: true}
	}

	l := layout{cellW: 2 * scale, cellH: scale}
	w := size.Columns * l.cellW
	h := size.Rows * l.cellH
	area := platformcore.Centered(screenW, screenH-hudHeight-footerHeight, w, h)
	l.board = platformcore.NewRect(area.X, area.Y+hudHeight, w, h)
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	size := g.engine.Config().Size
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.layout = newLayout(size, g.screenW, g.screenH)
	}

	g.renderHUD(dst)

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", platformcore.ColorBad)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", platformcore.ColorMuted)
		return
	}

	dst.DrawBox(g.layout.board.Inset(-frame), platformcore.ColorMuted)
	g.renderBoard(dst)

	switch g.engine.Status() {
	case core.StatusWon:
		line2 := fmt.Sprintf("Score %d", g.engine.Score())
		if g.engine.NewHighScore() {
			line2 = fmt.Sprintf("New high score: %d", g.engine.Score())
		}
		renderOverlay(dst, platformcore.ColorGood, "Board cleared!", line2, "Press R for a new board")
	case core.StatusGameOver:
		renderOverlay(dst, platformcore.ColorBad, "No moves left",
			fmt.Sprintf("Score %d", g.engine.Score()), "Press R for a new board")
	}
}

// renderHUD draws the status line, separator and controls hint.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	snap := g.engine.Snapshot()
	hud := fmt.Sprintf(" %s | Score: %d | Best: %d | Tiles: %d | Colors: %d",
		g.title, snap.Score, snap.HighScore, snap.Remaining, len(snap.Palette))
	dst.DrawTextColored(0, 0, hud, platformcore.ColorAccent)
	dst.DrawTextColored(0, 1, strings.Repeat("─", dst.Width()), platformcore.ColorMuted)

	controls := " Arrows: Move | Enter/Space: Remove group | Click: Remove group | R: New board | Q: Quit"
	dst.DrawTextColored(0, dst.Height()-1, controls, platformcore.ColorMuted)
}

// renderBoard draws every cell of the grid.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.engine.Grid()
	cursor := g.engine.Cursor()
	for _, p := range grid.Positions() {
		cell := grid.Get(p)
		x := g.layout.board.X + p.X*g.layout.cellW
		y := g.layout.board.Y + p.Y*g.layout.cellH

		switch {
		case !cell.Filled:
			// Mark empty cells with a dot so the board outline stays readable.
			dst.SetColored(x+g.layout.cellW/2-1, y+g.layout.cellH/2, '·', platformcore.ColorMuted)
		case p == cursor:
			g.fillCell(dst, x, y, '▓', platformcore.Color(cell.Color.Hex()))
			dst.SetColored(x, y, '[', platformcore.ColorText)
			dst.SetColored(x+g.layout.cellW-1, y+g.layout.cellH-1, ']', platformcore.ColorText)
		default:
			g.fillCell(dst, x, y, '█', platformcore.Color(cell.Color.Hex()))
		}
	}
}

func (g *Game) fillCell(dst *platformcore.Screen, x, y int, r rune, c platformcore.Color) {
	for dy := 0; dy < g.layout.cellH; dy++ {
		for dx := 0; dx < g.layout.cellW; dx++ {
			dst.SetColored(x+dx, y+dy, r, c)
		}
	}
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *platformcore.Screen, c platformcore.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := platformcore.Centered(dst.Width(), dst.Height(), width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		color := platformcore.ColorText
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
