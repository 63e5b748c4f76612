// Package core is the headless platformer simulation: bodies, collision,
// moving-platform carry, jumping, enemies and the per-frame level loop.
package core

import (
	"github.com/automoto/override/shared/gamemath"
)

// Body is a kinematic axis-aligned box. X and Y are the center, y grows up,
// and velocities are in units per frame.
type Body struct {
	X, Y         float64
	HalfW, HalfH float64
	VX, VY       float64
}

// NewBody creates a body centered at (x, y) with the given full size.
func NewBody(x, y, width, height float64) (*Body, error) {
	if !gamemath.Finite(x, y) {
		return nil, &ConfigurationError{Field: "body position", Value: [2]float64{x, y}, Reason: "must be finite"}
	}
	if !gamemath.Finite(width, height) || width <= 0 || height <= 0 {
		return nil, &ConfigurationError{Field: "body size", Value: [2]float64{width, height}, Reason: "must be positive and finite"}
	}
	return &Body{X: x, Y: y, HalfW: width / 2, HalfH: height / 2}, nil
}

// Integrate advances the position by one frame of velocity.
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

func (b *Body) Left() float64   { return b.X - b.HalfW }
func (b *Body) Right() float64  { return b.X + b.HalfW }
func (b *Body) Bottom() float64 { return b.Y - b.HalfH }
func (b *Body) Top() float64    { return b.Y + b.HalfH }

// Rect returns the body's current bounding box.
func (b *Body) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, HalfW: b.HalfW, HalfH: b.HalfH}
}

// Overlaps reports a positive-area intersection with r.
func (b *Body) Overlaps(r gamemath.Rect) bool {
	return b.Rect().Overlaps(r)
}

// Place moves the body and clears its velocity.
func (b *Body) Place(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
}
