package core

// Color is a foreground color for a screen cell, written as "#rrggbb".
// The empty string means the terminal default.
type Color string

// Interface colors shared by games and the platform.
const (
	ColorDefault Color = ""
	ColorText    Color = "#d0d0d0"
	ColorMuted   Color = "#6c6c6c"
	ColorAccent  Color = "#ffd75f"
	ColorGood    Color = "#87d787"
	ColorBad     Color = "#ff5f5f"
)
