// Package core provides fundamental types and utilities shared by the game
// logic and the terminal platform. It has no external dependencies (in
// particular no Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Vec is a 2D vector in arena space (points, y grows upward).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Box is an axis-aligned bounding box in arena space, described by its
// center and full size. Arena entities are positioned by their center.
type Box struct {
	Center Vec
	Size   Vec
}

// Min returns the lower-left corner.
func (b Box) Min() Vec {
	return Vec{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b Box) Contains(p Vec) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// ClosestPoint returns the point of the box nearest to p.
func (b Box) ClosestPoint(p Vec) Vec {
	lo, hi := b.Min(), b.Max()
	return Vec{X: ClampF(p.X, lo.X, hi.X), Y: ClampF(p.Y, lo.Y, hi.Y)}
}

// Rect is an axis-aligned rectangle in screen cells, used for drawing.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi]. NaN clamps to lo.
func ClampF(val, lo, hi float64) float64 {
	if val < lo || math.IsNaN(val) {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
