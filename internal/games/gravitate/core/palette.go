package core

import (
	"fmt"
	"math/rand"
)

// Color count limits for a single game.
const (
	MinColors = 3
	MaxColors = 22
)

// confusablePairs lists colors that are too close to share a board.
// The pairs are disjoint, so greedy selection always reaches MaxColors.
var confusablePairs = [][2]Color{
	{ColorRed, ColorCrimson},
	{ColorGreen, ColorForest},
	{ColorYellow, ColorGold},
	{ColorCyan, ColorSky},
	{ColorPurple, ColorViolet},
	{ColorBrown, ColorTan},
}

// Palette is the ordered set of colors used by one game.
type Palette []Color

// Confusable reports whether a and b are a forbidden pair.
func Confusable(a, b Color) bool {
	a, b = a.Base(), b.Base()
	for _, pair := range confusablePairs {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// SelectPalette picks n distinct colors from the master table at random,
// never placing both members of a confusable pair in the result.
func SelectPalette(n int, rng *rand.Rand) (Palette, error) {
	if n < MinColors || n > MaxColors {
		return nil, ValidationError{
			Code:    "INVALID_COLORS",
			Message: fmt.Sprintf("color count %d outside [%d, %d]", n, MinColors, MaxColors),
		}
	}

	candidates := make([]Color, colorCount)
	for i := range candidates {
		candidates[i] = Color(i)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	palette := make(Palette, 0, n)
	for _, c := range candidates {
		if len(palette) == n {
			break
		}
		if palette.conflicts(c) {
			continue
		}
		palette = append(palette, c)
	}
	return palette, nil
}

func (p Palette) conflicts(c Color) bool {
	for _, existing := range p {
		if existing == c || Confusable(existing, c) {
			return true
		}
	}
	return false
}

// Contains reports whether c (ignoring dimming) is part of the palette.
func (p Palette) Contains(c Color) bool {
	for _, existing := range p {
		if existing == c.Base() {
			return true
		}
	}
	return false
}

// Valid reports whether the palette has distinct colors and no confusable pair.
func (p Palette) Valid() bool {
	for i, c := range p {
		if !c.Known() || c.Dimmed() {
			return false
		}
		if Palette(p[:i]).conflicts(c) {
			return false
		}
	}
	return true
}

// Random returns a uniformly chosen palette color.
func (p Palette) Random(rng *rand.Rand) Color {
	return p[rng.Intn(len(p))]
}
