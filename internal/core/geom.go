// Package core provides fundamental types and utilities shared by the simulation
// and its frontends. It has no external dependencies (especially no Bubble Tea or
// ebiten) to keep game logic pure and testable.
package core

import "cmp"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersect returns the overlapping area of two rectangles.
// The result has zero width or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := max(min(r.Right(), other.Right())-x, 0)
	h := max(min(r.Bottom(), other.Bottom())-y, 0)
	return NewRect(x, y, w, h)
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// RectF is an axis-aligned bounding box in play-area units.
// Positions are real-valued so slow movers can accumulate sub-unit steps.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a new play-area rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scale maps the rectangle into cell space using per-axis divisors.
// A non-empty rectangle always covers at least one cell.
func (r RectF) Scale(unitW, unitH float64) Rect {
	x := int(r.X / unitW)
	y := int(r.Y / unitH)
	w := max(int(r.W/unitW), 1)
	h := max(int(r.H/unitH), 1)
	if r.Y < 0 && r.Y/unitH != float64(y) {
		y-- // floor, not truncate, for entities entering from above
	}
	return NewRect(x, y, w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
