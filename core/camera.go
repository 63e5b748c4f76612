package core

import "github.com/automoto/override/shared/gamemath"

// CameraMode selects how the camera follows its target.
type CameraMode int

const (
	CameraSmooth CameraMode = iota
	CameraSnap
)

// ParseCameraMode maps the config string to a mode.
func ParseCameraMode(s string) (CameraMode, error) {
	switch s {
	case "", "smooth":
		return CameraSmooth, nil
	case "snap":
		return CameraSnap, nil
	}
	return 0, &ConfigurationError{Field: "camera mode", Value: s, Reason: `must be "smooth" or "snap"`}
}

// Camera tracks a world-space center point.
type Camera struct {
	X, Y      float64
	Mode      CameraMode
	PanFactor float64

	clamp        bool
	bounds       gamemath.Rect
	viewW, viewH float64
}

// NewCamera validates the pan factor, which must lie in (0, 1].
func NewCamera(mode CameraMode, panFactor float64) (*Camera, error) {
	if !(panFactor > 0 && panFactor <= 1) {
		return nil, &ConfigurationError{Field: "camera pan_factor", Value: panFactor, Reason: "must be in (0,1]"}
	}
	return &Camera{Mode: mode, PanFactor: panFactor}, nil
}

// ClampTo keeps the view of size viewW x viewH inside bounds. A level
// smaller than the view is centered on that axis.
func (c *Camera) ClampTo(bounds gamemath.Rect, viewW, viewH float64) {
	c.clamp = true
	c.bounds = bounds
	c.viewW, c.viewH = viewW, viewH
}

// Snap jumps straight to the target.
func (c *Camera) Snap(tx, ty float64) {
	c.X, c.Y = c.limit(tx, ty)
}

// Update moves the camera one frame toward the target.
func (c *Camera) Update(tx, ty float64) {
	tx, ty = c.limit(tx, ty)
	if c.Mode == CameraSnap {
		c.X, c.Y = tx, ty
		return
	}
	c.X = gamemath.Approach(c.X, tx, c.PanFactor)
	c.Y = gamemath.Approach(c.Y, ty, c.PanFactor)
}

func (c *Camera) limit(x, y float64) (float64, float64) {
	if !c.clamp {
		return x, y
	}
	return limitAxis(x, c.bounds.Left(), c.bounds.Right(), c.viewW),
		limitAxis(y, c.bounds.Bottom(), c.bounds.Top(), c.viewH)
}

func limitAxis(v, lo, hi, view float64) float64 {
	if hi-lo <= view {
		return (lo + hi) / 2
	}
	return gamemath.Clamp(v, lo+view/2, hi-view/2)
}
