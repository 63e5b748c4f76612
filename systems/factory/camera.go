package factory

import (
	"github.com/automoto/override/archetypes"
	"github.com/automoto/override/components"
	"github.com/automoto/override/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the view camera, starting where the level camera is.
func CreateCamera(ecs *ecs.ECS, level *core.Level) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{}
	if level != nil {
		data.Position = math.NewVec2(level.Camera.X, level.Camera.Y)
	}
	components.Camera.SetValue(camera, data)
	return camera
}
