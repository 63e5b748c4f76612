package factory

import (
	"github.com/automoto/override/archetypes"
	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerView spawns the entity that carries the player's drawn pose.
// The player itself lives in the level simulation.
func CreatePlayerView(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.PlayerView.Spawn(ecs)
	components.PlayerView.SetValue(player, components.PlayerViewData{
		Pose:        cfg.StateIdle,
		Facing:      1,
		WasGrounded: true,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		TargetX:   1,
		TargetY:   1,
		LerpSpeed: cfg.SquashStretch.LerpSpeed,
	})
	return player
}
