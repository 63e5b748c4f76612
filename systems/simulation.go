package systems

import (
	"image/color"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/core"
	"github.com/automoto/override/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// QueueSink returns a level sink that queues events on the Game singleton.
// They are dispatched after the session advances, on the same frame.
func QueueSink(e *ecs.ECS) core.EventSink {
	return core.SinkFunc(func(ev core.Event) {
		entry, ok := components.Game.First(e.World)
		if !ok {
			return
		}
		game := components.Game.Get(entry)
		game.Events = append(game.Events, ev)
	})
}

// NewUpdateSimulation advances the running session by one rendered frame
// and turns its events into sound and effects. onEnd runs once, a short
// while after the level is won or lost.
func NewUpdateSimulation(onEnd func(won bool, score int)) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Game.First(e.World)
		if !ok {
			return
		}
		game := components.Game.Get(entry)
		if game.Session == nil {
			return
		}

		if !GetOrCreatePause(e).IsPaused {
			game.Session.Advance(1/float64(ebiten.TPS()), Controls(getOrCreateInput(e)))
		}

		// Dispatch may spawn entities, so work on a detached copy.
		events := game.Events
		game.Events = nil
		for _, ev := range events {
			dispatchEvent(e, ev)
		}

		level := game.Level()
		if level.Outcome == core.Running || game.Reported {
			return
		}
		game.EndFrames++
		if game.EndFrames >= cfg.GameOver.EndDelayFrames {
			game.Reported = true
			if onEnd != nil {
				onEnd(level.Outcome == core.Won, level.Score)
			}
		}
	}
}

func dispatchEvent(e *ecs.ECS, ev core.Event) {
	switch ev := ev.(type) {
	case core.CoinCollected:
		PlaySFX(e, cfg.SoundCoin)
		SpawnBurst(e, ev.X, ev.Y, cfg.Particles.Coin, cfg.Particles.CoinColor)

	case core.PlayerDied:
		PlaySFX(e, cfg.SoundDeath)
		SpawnBurst(e, ev.X, ev.Y, cfg.Particles.Death, deathColor(ev.Cause))
		TriggerScreenShake(e, cfg.Camera.DeathShakeIntensity, cfg.Camera.DeathShakeDuration)

	case core.JumpStarted:
		PlaySFX(e, cfg.SoundJump)
		if entry, ok := tags.Player.First(e.World); ok {
			TriggerSquashStretch(entry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		}

	case core.StatusMessage:
		ShowStatus(e, ev.Text, ev.Duration)
		PlaySFX(e, cfg.SoundStatus)

	case core.LevelWon:
		PlaySFX(e, cfg.SoundWin)
		FadeOutMusic(e)

	case core.LevelLost:
		PlaySFX(e, cfg.SoundLose)
		FadeOutMusic(e)
	}
}

func deathColor(c core.DeathCause) color.RGBA {
	switch c {
	case core.CauseEnemy:
		return cfg.Particles.Enemy
	case core.CauseFall:
		return cfg.Particles.Fall
	}
	return cfg.Particles.Hazard
}
