// Package geom provides the small value types the simulation is built
// from. It contains no collision logic and no external dependencies so
// the game packages stay pure and easy to test.
package geom

import "math"

// Vec2 is a 2D vector, used for the ball's velocity in field units per
// second.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Scale returns the vector scaled by s.
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Len returns the euclidean length.
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Rect is an axis-aligned box; X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
