package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravitate/internal/core"
)

// styles caches one lipgloss style per screen color.
var styles = struct {
	sync.Mutex
	m map[core.Color]lipgloss.Style
}{m: map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}}

// styleFor returns the foreground style for c.
func styleFor(c core.Color) lipgloss.Style {
	styles.Lock()
	defer styles.Unlock()
	if s, ok := styles.m[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	styles.m[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
