package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	debugPlayer = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	debugEnemy  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	debugRiding = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// UpdateDebug toggles the collision overlay with F3.
func UpdateDebug(_ *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.DrawBoxes = !cfg.Debug.DrawBoxes
	}
}

// DrawDebug outlines every collision box and prints the player's state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}
	level := currentLevel(e)
	if level == nil {
		return
	}
	view, ok := NewView(e, screen)
	if !ok {
		return
	}

	for _, s := range level.Statics {
		view.strokeRect(screen, s.Rect(), debugSolid)
	}
	for i := 0; i < level.Platforms.Len(); i++ {
		s := level.Platforms.At(i).Solid
		c := debugSolid
		if s == level.Riding {
			c = debugRiding
		}
		view.strokeRect(screen, s.Rect(), c)
	}
	for _, en := range level.Enemies {
		if en.Active {
			view.strokeRect(screen, en.Rect(), debugEnemy)
		}
	}
	view.strokeRect(screen, level.Player.Rect(), debugPlayer)

	p := level.Player
	info := fmt.Sprintf("pos %.1f,%.1f  vel %.2f,%.2f  grounded %t  jump %s  frame %d  tps %.0f",
		p.X, p.Y, p.VX, p.VY, level.Grounded, level.Jump.Phase, level.Frame, ebiten.ActualTPS())
	drawText(screen, info, fonts.Small.Get(), 10, screen.Bounds().Dy()-30, cfg.White)
}
