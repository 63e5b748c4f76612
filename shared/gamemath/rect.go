package gamemath

// Rect is an axis-aligned box described by its center and half extents.
// Y grows upward.
type Rect struct {
	X, Y         float64
	HalfW, HalfH float64
}

// RectFromSize builds a Rect from a center point and full width/height.
func RectFromSize(cx, cy, w, h float64) Rect {
	return Rect{X: cx, Y: cy, HalfW: w / 2, HalfH: h / 2}
}

// RectFromEdges builds a Rect from its four edges.
func RectFromEdges(left, bottom, right, top float64) Rect {
	return Rect{
		X:     (left + right) / 2,
		Y:     (bottom + top) / 2,
		HalfW: (right - left) / 2,
		HalfH: (top - bottom) / 2,
	}
}

func (r Rect) Left() float64   { return r.X - r.HalfW }
func (r Rect) Right() float64  { return r.X + r.HalfW }
func (r Rect) Bottom() float64 { return r.Y - r.HalfH }
func (r Rect) Top() float64    { return r.Y + r.HalfH }
func (r Rect) Width() float64  { return r.HalfW * 2 }
func (r Rect) Height() float64 { return r.HalfH * 2 }

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports a positive-area intersection. Rects that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Bottom() < o.Top() && r.Top() > o.Bottom()
}

// Touches is Overlaps with closed edges: shared edges and corners count.
func (r Rect) Touches(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Bottom() <= o.Top() && r.Top() >= o.Bottom()
}

// OverlapsX reports strict overlap on the horizontal axis only.
func (r Rect) OverlapsX(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left()
}

// OverlapsY reports strict overlap on the vertical axis only.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Bottom() < o.Top() && r.Top() > o.Bottom()
}

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	return RectFromEdges(
		min(r.Left(), o.Left()),
		min(r.Bottom(), o.Bottom()),
		max(r.Right(), o.Right()),
		max(r.Top(), o.Top()),
	)
}

// Inflate grows the rect by d on every side.
func (r Rect) Inflate(d float64) Rect {
	r.HalfW += d
	r.HalfH += d
	return r
}
