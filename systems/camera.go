package systems

import (
	"math"

	"github.com/automoto/override/components"
	"github.com/automoto/override/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera copies the level camera and layers screen shake on top.
// The level moves its own camera inside Step.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if level := currentLevel(e); level != nil {
		camera.Position.X = level.Camera.X
		camera.Position.Y = level.Camera.Y
	}
	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

func currentLevel(e *ecs.ECS) *core.Level {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	game := components.Game.Get(entry)
	if game.Session == nil {
		return nil
	}
	return game.Level()
}
