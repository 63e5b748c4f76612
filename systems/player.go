package systems

import (
	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerView derives the drawn pose from the simulated player and
// squashes the sprite on landing.
func UpdatePlayerView(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level := currentLevel(e)
	if level == nil {
		return
	}
	view := components.PlayerView.Get(entry)
	p := level.Player

	view.Pose = cfg.PoseFor(p.VX, p.VY)
	if level.Grounded {
		view.Pose = cfg.PoseFor(p.VX, 0)
	}
	if p.VX > 0 {
		view.Facing = 1
	} else if p.VX < 0 {
		view.Facing = -1
	}

	if level.Grounded && !view.WasGrounded {
		TriggerSquashStretch(entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}
	view.WasGrounded = level.Grounded
}
