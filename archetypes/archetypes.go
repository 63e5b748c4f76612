package archetypes

import (
	"github.com/automoto/override/components"
	"github.com/automoto/override/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		components.Game,
	)
	PlayerView = newArchetype(
		tags.Player,
		components.PlayerView,
		components.SquashStretch,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.Default,
		append(a.components, cs...)...,
	))
	return e
}
