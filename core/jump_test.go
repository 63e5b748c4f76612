package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groundedPlayer(t *testing.T, solids ...*Solid) (*Body, *Resolver, JumpController) {
	t.Helper()
	floor := box(0, 0, 400, 20) // top 10
	r := newTestResolver(append([]*Solid{floor}, solids...)...)
	b := mustBody(t, 0, 26, 32, 32)
	require.True(t, r.CanJump(b))
	return b, r, NewJumpController(DefaultTuning().Jump)
}

func TestJumpBlockedByCeiling(t *testing.T) {
	// Bottom at 60, inside the probe box that spans 50..82.
	b, r, j := groundedPlayer(t, box(0, 70, 100, 20))
	blocked := func() bool { return r.Blocked(b.Rect().Translate(0, j.cfg.ProbeDistance)) }

	started := j.Update(b, Input{JumpPressed: true, JumpHeld: true}, r.CanJump(b), blocked)

	assert.False(t, started)
	assert.Zero(t, b.VY)
	assert.Equal(t, Grounded, j.Phase)
}

func TestJumpNotBlockedByOneWayOverhead(t *testing.T) {
	b, r, j := groundedPlayer(t, oneWay(0, 70, 100, 10))
	blocked := func() bool { return r.Blocked(b.Rect().Translate(0, j.cfg.ProbeDistance)) }

	assert.True(t, j.Update(b, Input{JumpPressed: true}, r.CanJump(b), blocked))
}

func TestJumpLaunchAndHold(t *testing.T) {
	b, r, j := groundedPlayer(t)
	never := func() bool { return false }
	cfg := j.cfg

	require.True(t, j.Update(b, Input{JumpPressed: true, JumpHeld: true}, r.CanJump(b), never))
	assert.Equal(t, RisingHold, j.Phase)
	assert.InDelta(t, cfg.LaunchSpeed+cfg.HoldForce, b.VY, 1e-12)

	for i := 1; i < cfg.MaxHoldFrames; i++ {
		vy := b.VY
		j.Update(b, Input{JumpHeld: true}, false, never)
		assert.InDelta(t, vy+cfg.HoldForce, b.VY, 1e-12)
	}
	assert.Equal(t, cfg.MaxHoldFrames, j.HeldFrames)
	assert.Equal(t, FreeFall, j.Phase)

	vy := b.VY
	j.Update(b, Input{JumpHeld: true}, false, never)
	assert.Equal(t, vy, b.VY, "no lift after the hold window")
}

func TestJumpReleaseDampsUpwardVelocity(t *testing.T) {
	b, r, j := groundedPlayer(t)
	never := func() bool { return false }

	j.Update(b, Input{JumpPressed: true, JumpHeld: true}, r.CanJump(b), never)
	vy := b.VY
	j.Update(b, Input{}, false, never)

	assert.InDelta(t, vy*j.cfg.ReleaseDamping, b.VY, 1e-12)
	assert.Equal(t, FreeFall, j.Phase)
}

func TestJumpNeedsGround(t *testing.T) {
	j := NewJumpController(DefaultTuning().Jump)
	b := mustBody(t, 0, 500, 32, 32)
	b.VY = -3

	assert.False(t, j.Update(b, Input{JumpPressed: true, JumpHeld: true}, false, func() bool { return false }))
	assert.Equal(t, -3.0, b.VY)
	assert.Equal(t, FreeFall, j.Phase)
}

func TestJumpReturnsToGroundedOnLanding(t *testing.T) {
	l, rec := buildLevel(t, floorLevel())

	l.Step(Input{JumpPressed: true, JumpHeld: true})
	require.Len(t, EventsOf[JumpStarted](rec), 1)

	for i := 0; i < 120 && !l.Grounded; i++ {
		l.Step(idle)
	}
	require.True(t, l.Grounded)
	l.Step(idle)
	assert.Equal(t, Grounded, l.Jump.Phase)

	// Holding the button does not re-trigger; only a new press does.
	l.Step(Input{JumpHeld: true})
	assert.Len(t, EventsOf[JumpStarted](rec), 1)
	l.Step(Input{JumpPressed: true, JumpHeld: true})
	assert.Len(t, EventsOf[JumpStarted](rec), 2)
}
