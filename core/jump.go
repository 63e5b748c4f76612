package core

import "github.com/automoto/override/config"

// JumpPhase is the jump controller's state.
type JumpPhase int

const (
	Grounded JumpPhase = iota
	RisingHold
	FreeFall
)

func (p JumpPhase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	case RisingHold:
		return "rising-hold"
	case FreeFall:
		return "free-fall"
	}
	return "unknown"
}

// JumpController implements variable-height jumps: a fixed launch speed plus
// extra lift while the button stays held, cut short on release.
type JumpController struct {
	Phase      JumpPhase
	HeldFrames int
	cfg        config.JumpConfig
}

func NewJumpController(cfg config.JumpConfig) JumpController {
	return JumpController{cfg: cfg}
}

// Reset returns the controller to Grounded.
func (j *JumpController) Reset() {
	j.Phase = Grounded
	j.HeldFrames = 0
}

// Update runs one frame. canJump is the resolver's ground test from the end
// of the previous frame; blocked is only called when a jump could start.
// It reports whether a jump started this frame.
func (j *JumpController) Update(b *Body, in Input, canJump bool, blocked func() bool) bool {
	switch {
	case canJump && j.Phase == FreeFall:
		j.Phase = Grounded
	case !canJump && j.Phase == Grounded:
		j.Phase = FreeFall
	}

	started := false
	if in.JumpPressed && canJump && !blocked() {
		b.VY = j.cfg.LaunchSpeed
		j.HeldFrames = 0
		j.Phase = RisingHold
		started = true
	}

	if j.Phase == RisingHold {
		if in.JumpHeld && j.HeldFrames < j.cfg.MaxHoldFrames {
			b.VY += j.cfg.HoldForce
			j.HeldFrames++
			if j.HeldFrames >= j.cfg.MaxHoldFrames {
				j.Phase = FreeFall
			}
		} else {
			if !in.JumpHeld && b.VY > 0 {
				b.VY *= j.cfg.ReleaseDamping
			}
			j.Phase = FreeFall
		}
	}
	return started
}
