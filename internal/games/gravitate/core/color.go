package core

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color identifies a tile color by its index in the master table. The high
// bit marks the darkened variant produced by Darker.
type Color uint8

const dimBit Color = 0x80

// Master table indices.
const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorOrange
	ColorPurple
	ColorCyan
	ColorMagenta
	ColorLime
	ColorPink
	ColorTeal
	ColorLavender
	ColorBrown
	ColorBeige
	ColorMaroon
	ColorMint
	ColorOlive
	ColorApricot
	ColorNavy
	ColorGrey
	ColorWhite
	ColorGold
	ColorCrimson
	ColorSky
	ColorForest
	ColorViolet
	ColorSalmon
	ColorTan
	colorCount
)

type colorInfo struct {
	name string
	hex  string
}

var masterColors = [colorCount]colorInfo{
	ColorRed:      {"red", "#e6194b"},
	ColorGreen:    {"green", "#3cb44b"},
	ColorYellow:   {"yellow", "#ffe119"},
	ColorBlue:     {"blue", "#4363d8"},
	ColorOrange:   {"orange", "#f58231"},
	ColorPurple:   {"purple", "#911eb4"},
	ColorCyan:     {"cyan", "#42d4f4"},
	ColorMagenta:  {"magenta", "#f032e6"},
	ColorLime:     {"lime", "#bfef45"},
	ColorPink:     {"pink", "#fabed4"},
	ColorTeal:     {"teal", "#469990"},
	ColorLavender: {"lavender", "#dcbeff"},
	ColorBrown:    {"brown", "#9a6324"},
	ColorBeige:    {"beige", "#fffac8"},
	ColorMaroon:   {"maroon", "#800000"},
	ColorMint:     {"mint", "#aaffc3"},
	ColorOlive:    {"olive", "#808000"},
	ColorApricot:  {"apricot", "#ffd8b1"},
	ColorNavy:     {"navy", "#000075"},
	ColorGrey:     {"grey", "#a9a9a9"},
	ColorWhite:    {"white", "#ffffff"},
	ColorGold:     {"gold", "#d4af37"},
	ColorCrimson:  {"crimson", "#b0171f"},
	ColorSky:      {"sky", "#87ceeb"},
	ColorForest:   {"forest", "#228b22"},
	ColorViolet:   {"violet", "#8f00ff"},
	ColorSalmon:   {"salmon", "#fa8072"},
	ColorTan:      {"tan", "#d2b48c"},
}

// ASCII glyphs, one per master color. Dimmed tiles use the second row.
const (
	baseGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ01"
	dimGlyphs  = "abcdefghijklmnopqrstuvwxyz89"
)

// darkenAmount is how far Darker blends toward black in Lab space.
const darkenAmount = 0.55

// MasterColorCount returns the number of colors in the master table.
func MasterColorCount() int {
	return int(colorCount)
}

// Darker returns the dimmed variant of c. Dimming is idempotent.
func (c Color) Darker() Color {
	return c | dimBit
}

// Dimmed reports whether c is a darkened variant.
func (c Color) Dimmed() bool {
	return c&dimBit != 0
}

// Base strips the dim flag.
func (c Color) Base() Color {
	return c &^ dimBit
}

// Known reports whether c refers to a master table entry.
func (c Color) Known() bool {
	return c.Base() < colorCount
}

// String returns the color name, prefixed with "dim-" for darkened tiles.
func (c Color) String() string {
	if !c.Known() {
		return "unknown"
	}
	name := masterColors[c.Base()].name
	if c.Dimmed() {
		return "dim-" + name
	}
	return name
}

// Hex returns the display color as "#rrggbb".
func (c Color) Hex() string {
	if !c.Known() {
		return "#000000"
	}
	hex := masterColors[c.Base()].hex
	if !c.Dimmed() {
		return hex
	}
	base, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return base.BlendLab(colorful.Color{}, darkenAmount).Clamped().Hex()
}

// Char returns the ASCII glyph used by Grid.String.
func (c Color) Char() rune {
	if !c.Known() {
		return '?'
	}
	if c.Dimmed() {
		return rune(dimGlyphs[c.Base()])
	}
	return rune(baseGlyphs[c.Base()])
}

// ParseColorChar is the inverse of Char.
func ParseColorChar(r rune) (Color, bool) {
	if i := strings.IndexRune(baseGlyphs, r); i >= 0 {
		return Color(i), true
	}
	if i := strings.IndexRune(dimGlyphs, r); i >= 0 {
		return Color(i).Darker(), true
	}
	return 0, false
}

// ParseColor looks a color up by name.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range masterColors {
		if info.name == name {
			return Color(i), true
		}
	}
	return 0, false
}
