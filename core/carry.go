package core

import (
	"github.com/automoto/override/config"
	"github.com/automoto/override/shared/gamemath"
)

// Rider finds the moving platform b stands on: the box is probed downward
// by cfg.RiderProbeDistance against moving solids, candidates need strict
// horizontal overlap and a center no higher than b's, and the highest top
// wins. A rising body rides nothing.
func Rider(space *Space, b *Body, cfg config.CarryConfig) *Solid {
	if b.VY > 0 {
		return nil
	}
	probe := b.Rect().Translate(0, -cfg.RiderProbeDistance)
	area := b.Rect().Union(probe)

	var best *Solid
	for _, s := range space.Query(area, TagMoving) {
		sr := s.Rect()
		if !probe.Overlaps(sr) || !overlapsXStrict(b.Rect(), sr) {
			continue
		}
		if b.Y < s.Y {
			continue
		}
		if best == nil || s.Top() > best.Top() {
			best = s
		}
	}
	return best
}

// CarryX is the horizontal carry for a rider whose platform moved platformDX
// this frame. actualDX is the rider's own displacement since the frame began
// and inputDX the part of it that came from input. Any same-direction
// displacement the rider already got from elsewhere is not carried twice,
// and the result never exceeds the platform's own motion.
func CarryX(platformDX, actualDX, inputDX float64, inputPriority bool) float64 {
	extra := actualDX - inputDX
	if inputPriority && gamemath.SameSign(inputDX, platformDX) {
		extra += inputDX
	}
	carry := platformDX
	if gamemath.SameSign(platformDX, extra) {
		carry = platformDX - extra
	}
	return gamemath.ClampToward(carry, platformDX)
}

// Carry moves the rider with its platform. startX is the rider's x at the
// start of the frame and inputDX the horizontal velocity input asked for.
// It returns the platform ridden, or nil.
func (l *Level) carry(startX, inputDX float64) *Solid {
	if l.Jump.Phase == RisingHold {
		return nil
	}
	s := Rider(l.space, l.Player, l.tuning.Carry)
	if s == nil {
		return nil
	}
	rec := l.Platforms.At(s.slot)
	dx, dy := rec.Delta()
	l.Player.X += CarryX(dx, l.Player.X-startX, inputDX, l.tuning.Carry.InputPriority)
	l.Player.Y += dy
	return s
}
