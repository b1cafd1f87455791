// Package core holds the platform-neutral types shared by games and the
// terminal layer: runtime config, input frames, the screen buffer and
// 1-D span math. It imports nothing outside the standard library.
package core

import "math"

// Rect represents an axis-aligned box on the character grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed 1-D interval [Lo, Hi] on a lane.
type Span struct {
	Lo, Hi float64
}

// NewSpan builds the interval starting at pos with the given width.
func NewSpan(pos, width float64) Span {
	return Span{Lo: pos, Hi: pos + width}
}

// Overlaps reports whether two spans share interior points.
// Spans that only touch at an endpoint do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Lo < other.Hi && other.Lo < s.Hi
}

// Contains reports whether x lies inside the span, endpoints included.
func (s Span) Contains(x float64) bool {
	return x >= s.Lo && x <= s.Hi
}

// Expand grows the span by tol on both sides.
func (s Span) Expand(tol float64) Span {
	return Span{Lo: s.Lo - tol, Hi: s.Hi + tol}
}

// Width returns the length of the span.
func (s Span) Width() float64 {
	return s.Hi - s.Lo
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// RoundToInt rounds half away from zero.
func RoundToInt(x float64) int {
	return int(math.Round(x))
}
