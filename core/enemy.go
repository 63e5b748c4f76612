package core

import (
	"math/rand/v2"

	"github.com/automoto/override/config"
	"github.com/automoto/override/shared/leveldata"
)

// EnemyKind tags which AI drives an enemy.
type EnemyKind string

const (
	KindPatrol   EnemyKind = leveldata.KindPatrol
	KindJumping  EnemyKind = leveldata.KindJumping
	KindFlying   EnemyKind = leveldata.KindFlying
	KindScripted EnemyKind = leveldata.KindScripted
)

// Enemy is a kinematic body plus its kind and per-kind AI state. The AI only
// sets velocity; the resolver moves the body.
type Enemy struct {
	Body
	Kind    EnemyKind
	Active  bool
	Gravity float64

	// patrol and flying
	LeftBound, RightBound float64
	Speed                 float64
	dir                   float64

	// jumping
	IntervalMin, IntervalMax float64
	JumpStrength             float64
	JumpTimer                float64

	// flying
	BaseY, Amplitude, Phase, PhaseRate float64

	script *enemyScript
	rng    *rand.Rand

	Grounded bool
	HitWall  bool
}

// newEnemy builds an enemy from its level entry, filling parameters the
// level omits from cfg.
func newEnemy(spec leveldata.EnemySpec, cfg config.EnemyConfig, gravity float64, rng *rand.Rand) (*Enemy, error) {
	body, err := NewBody(spec.X, spec.Y, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	e := &Enemy{
		Body:    *body,
		Kind:    EnemyKind(spec.Kind),
		Active:  true,
		Gravity: gravity,
		rng:     rng,
		dir:     1,
	}
	e.LeftBound = spec.Param("left_bound", spec.X-cfg.PatrolRange)
	e.RightBound = spec.Param("right_bound", spec.X+cfg.PatrolRange)

	switch e.Kind {
	case KindPatrol:
		e.Speed = spec.Param("speed", cfg.PatrolSpeed)
		e.VX = e.Speed
	case KindJumping:
		e.IntervalMin = spec.Param("interval_min", cfg.JumpIntervalMin)
		e.IntervalMax = spec.Param("interval_max", cfg.JumpIntervalMax)
		e.JumpStrength = spec.Param("jump_strength", cfg.JumpStrength)
		e.JumpTimer = e.nextJumpDelay()
	case KindFlying:
		e.Speed = spec.Param("speed", cfg.FlySpeed)
		e.Amplitude = spec.Param("amplitude", cfg.FlyAmplitude)
		e.PhaseRate = spec.Param("phase_rate", cfg.FlyPhaseRate)
		e.BaseY = spec.Y
		e.Gravity = 0
		// Flying enemies only reflect when the level gives explicit bounds.
		_, hasLeft := spec.Params["left_bound"]
		_, hasRight := spec.Params["right_bound"]
		if !hasLeft {
			e.LeftBound = negInf
		}
		if !hasRight {
			e.RightBound = posInf
		}
	case KindScripted:
		s, err := compileEnemyScript(spec.Script, gravity)
		if err != nil {
			return nil, err
		}
		e.script = s
	default:
		return nil, &leveldata.LevelDataError{Field: "enemies", Reason: "unknown enemy kind " + string(e.Kind)}
	}
	return e, nil
}

func (e *Enemy) nextJumpDelay() float64 {
	if e.IntervalMax <= e.IntervalMin {
		return e.IntervalMin
	}
	return e.IntervalMin + e.rng.Float64()*(e.IntervalMax-e.IntervalMin)
}
