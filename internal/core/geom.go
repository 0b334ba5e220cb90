// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used by the terminal screen buffer.
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

// Vec is a 2D vector in canvas units (positions) or canvas units per second (velocities).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Finite reports whether both components are real numbers.
func (v Vec) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Box is an axis-aligned rectangle in canvas units, described by its edges.
type Box struct {
	Left, Top, Right, Bottom float64
}

// CenteredBox returns a box of size w×h centred at (cx, cy).
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the centre point of the box.
func (b Box) Center() Vec {
	return Vec{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Contains reports whether p lies inside the box, edges included.
// Non-finite points and boxes never contain anything.
func (b Box) Contains(p Vec) bool {
	if !p.Finite() || !b.Finite() {
		return false
	}
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Intersects reports whether two boxes overlap (touching edges count).
func (b Box) Intersects(o Box) bool {
	if !b.Finite() || !o.Finite() {
		return false
	}
	return b.Left <= o.Right && o.Left <= b.Right && b.Top <= o.Bottom && o.Top <= b.Bottom
}

// Expand grows the box by dx on the left and right and dy on the top and bottom.
func (b Box) Expand(dx, dy float64) Box {
	return Box{Left: b.Left - dx, Top: b.Top - dy, Right: b.Right + dx, Bottom: b.Bottom + dy}
}

// Finite reports whether every edge is a real number.
func (b Box) Finite() bool {
	return isFinite(b.Left) && isFinite(b.Top) && isFinite(b.Right) && isFinite(b.Bottom)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
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
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
