package core

import (
	"math"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// aiEnv is what an AI step may read besides its own enemy.
type aiEnv struct {
	DT      float64
	T       float64
	PlayerX float64
	PlayerY float64
}

type aiStep func(e *Enemy, env aiEnv)

var aiTable = map[EnemyKind]aiStep{
	KindPatrol:   patrolStep,
	KindJumping:  jumpingStep,
	KindFlying:   flyingStep,
	KindScripted: scriptedStep,
}

// reflect turns dir toward the interior at or beyond a bound, and away from
// a wall the last move ran into.
func (e *Enemy) reflect() {
	switch {
	case e.X <= e.LeftBound:
		e.dir = 1
	case e.X >= e.RightBound:
		e.dir = -1
	case e.HitWall:
		e.dir = -e.dir
	}
}

func patrolStep(e *Enemy, _ aiEnv) {
	e.reflect()
	e.VX = e.dir * e.Speed
}

func jumpingStep(e *Enemy, env aiEnv) {
	e.VX = 0
	e.JumpTimer -= env.DT
	if e.JumpTimer <= 0 && e.Grounded {
		e.VY = e.JumpStrength
		e.JumpTimer = e.nextJumpDelay()
	}
}

func flyingStep(e *Enemy, env aiEnv) {
	e.Phase += env.DT * e.PhaseRate
	e.reflect()
	e.VX = e.dir * e.Speed
	e.VY = e.BaseY + math.Sin(e.Phase)*e.Amplitude - e.Y
}

func scriptedStep(e *Enemy, env aiEnv) {
	if e.script == nil || e.script.err != nil {
		e.VX = 0
		return
	}
	e.script.step(e, env)
}
