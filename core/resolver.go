package core

import (
	"math"

	"github.com/automoto/override/config"
	"github.com/automoto/override/shared/gamemath"
)

// skin absorbs float drift on edges that should be exactly flush, so a body
// sliding over adjacent floor rectangles does not catch on the seam.
const skin = 1e-6

// Contact is what a Move touched.
type Contact struct {
	Ground  *Solid // highest solid landed on, if any
	Ceiling bool
	Wall    bool
}

// Resolver moves bodies through a Space without letting them penetrate
// solids. It is shared by the player and every enemy.
type Resolver struct {
	space *Space
	cfg   config.PhysicsConfig
}

func NewResolver(space *Space, cfg config.PhysicsConfig) *Resolver {
	return &Resolver{space: space, cfg: cfg}
}

// Move runs one frame for b: depenetration, gravity, then a swept horizontal
// move followed by a swept vertical move.
func (r *Resolver) Move(b *Body, gravity float64) Contact {
	r.depenetrate(b)

	b.VY -= gravity
	if b.VY < -r.cfg.MaxFallSpeed {
		b.VY = -r.cfg.MaxFallSpeed
	}

	var c Contact
	if b.VX != 0 {
		c.Wall = r.sweepX(b)
	}
	if b.VY != 0 {
		c.Ground, c.Ceiling = r.sweepY(b)
	}
	return c
}

// depenetrate pushes b out of any solid it starts inside, along the axis of
// least penetration. One-way solids only push up, and only when b is within
// the one-way threshold of their top.
func (r *Resolver) depenetrate(b *Body) {
	for pass := 0; pass < 4; pass++ {
		moved := false
		for _, s := range r.space.Query(b.Rect(), TagSolid) {
			if !b.Overlaps(s.Rect()) {
				continue
			}
			up := s.Top() - b.Bottom()
			if s.OneWay {
				if up > r.cfg.OneWayThreshold {
					continue
				}
				b.Y += up
				b.VY = math.Max(b.VY, 0)
				moved = true
				continue
			}
			left := b.Right() - s.Left()
			right := s.Right() - b.Left()
			down := b.Top() - s.Bottom()
			switch math.Min(math.Min(left, right), math.Min(up, down)) {
			case up:
				b.Y += up
				b.VY = math.Max(b.VY, 0)
			case down:
				b.Y -= down
				b.VY = math.Min(b.VY, 0)
			case left:
				b.X -= left
			default:
				b.X += right
			}
			moved = true
		}
		if !moved {
			return
		}
	}
}

// sweepX moves b by VX, stopping at the nearest blocking edge. One-way
// solids never block sideways.
func (r *Resolver) sweepX(b *Body) bool {
	from := b.Rect()
	dx := b.VX
	area := from.Union(from.Translate(dx, 0))

	hit := false
	for _, s := range r.space.Query(area, TagSolid) {
		if s.OneWay || !overlapsYStrict(from, s.Rect()) {
			continue
		}
		if dx > 0 && s.Left() >= from.Right()-skin && s.Left() < from.Right()+dx {
			dx = s.Left() - from.Right()
			hit = true
		} else if dx < 0 && s.Right() <= from.Left()+skin && s.Right() > from.Left()+dx {
			dx = s.Right() - from.Left()
			hit = true
		}
	}
	b.X += dx
	if hit {
		b.VX = 0
	}
	return hit
}

// sweepY moves b by VY. Falling lands on the highest top crossed; rising
// stops under the lowest bottom crossed.
func (r *Resolver) sweepY(b *Body) (ground *Solid, ceiling bool) {
	from := b.Rect()
	dy := b.VY
	area := from.Union(from.Translate(0, dy))

	if dy < 0 {
		landY := math.Inf(-1)
		for _, s := range r.space.Query(area, TagSolid) {
			if !overlapsXStrict(from, s.Rect()) {
				continue
			}
			reach := skin
			if s.OneWay {
				reach = r.cfg.OneWayThreshold
			}
			top := s.Top()
			if top > from.Bottom()+reach || top < from.Bottom()+dy {
				continue
			}
			if top > landY {
				landY = top
				ground = s
			}
		}
		if ground != nil {
			b.Y = landY + b.HalfH
			b.VY = 0
			return ground, false
		}
		b.Y += dy
		return nil, false
	}

	stopY := math.Inf(1)
	for _, s := range r.space.Query(area, TagSolid) {
		if s.OneWay || !overlapsXStrict(from, s.Rect()) {
			continue
		}
		bottom := s.Bottom()
		if bottom < from.Top()-skin || bottom > from.Top()+dy {
			continue
		}
		if bottom < stopY {
			stopY = bottom
			ceiling = true
		}
	}
	if ceiling {
		b.Y = stopY - b.HalfH
		b.VY = math.Min(b.VY, 0)
		return nil, true
	}
	b.Y += dy
	return nil, false
}

// CanJump reports whether b rests on top of at least one solid: bottom
// within GroundEpsilon of the top, strict horizontal overlap, not rising.
func (r *Resolver) CanJump(b *Body) bool {
	return r.Support(b) != nil
}

// Support returns the highest solid b is resting on, or nil.
func (r *Resolver) Support(b *Body) *Solid {
	if b.VY > 0 {
		return nil
	}
	eps := r.cfg.GroundEpsilon
	feet := gamemath.RectFromEdges(b.Left(), b.Bottom()-eps, b.Right(), b.Bottom()+eps)
	var best *Solid
	for _, s := range r.space.Query(feet, TagSolid) {
		if !overlapsXStrict(b.Rect(), s.Rect()) {
			continue
		}
		if math.Abs(b.Bottom()-s.Top()) > eps {
			continue
		}
		if best == nil || s.Top() > best.Top() {
			best = s
		}
	}
	return best
}

// Blocked reports whether area overlaps any solid that blocks from below.
func (r *Resolver) Blocked(area gamemath.Rect) bool {
	for _, s := range r.space.Query(area, TagSolid) {
		if !s.OneWay && area.Overlaps(s.Rect()) {
			return true
		}
	}
	return false
}

func overlapsXStrict(a, b gamemath.Rect) bool {
	return a.Left() < b.Right()-skin && a.Right() > b.Left()+skin
}

func overlapsYStrict(a, b gamemath.Rect) bool {
	return a.Bottom() < b.Top()-skin && a.Top() > b.Bottom()+skin
}
