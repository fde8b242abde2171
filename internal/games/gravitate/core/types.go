// Package core implements the Gravitate board rules: tiles are removed in
// same-colored groups and the survivors drift toward the center of the board.
//
// The package has no platform dependencies. Timing, rendering and persistence
// belong to the host, which drives the engine through Game.
package core

import (
	"fmt"
	"math"
)

// Pos is a cell position. X is the column, Y is the row, both zero-based.
type Pos struct {
	X int
	Y int
}

// InvalidPos marks "no position", e.g. an unset cursor.
var InvalidPos = Pos{X: -1, Y: -1}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Valid reports whether p is not the InvalidPos sentinel.
func (p Pos) Valid() bool {
	return p != InvalidPos
}

// String returns "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbor of p in direction d.
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance from p to the point (cx, cy).
func (p Pos) Distance(cx, cy float64) float64 {
	return math.Hypot(float64(p.X)-cx, float64(p.Y)-cy)
}

// Size is the board dimension in cells.
type Size struct {
	Columns int
	Rows    int
}

// Area returns Columns*Rows.
func (s Size) Area() int {
	return s.Columns * s.Rows
}

// Center returns the geometric center of the board. For even dimensions the
// center falls between two cells.
func (s Size) Center() (float64, float64) {
	return float64(s.Columns-1) / 2, float64(s.Rows-1) / 2
}

// CenterCell returns the cell at integer division of the dimensions.
func (s Size) CenterCell() Pos {
	return Pos{X: s.Columns / 2, Y: s.Rows / 2}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Columns, s.Rows)
}

// Direction is an orthogonal move on the board.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four orthogonal directions in a fixed order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (dx, dy) offset of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ValidationError describes a rejected game configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
