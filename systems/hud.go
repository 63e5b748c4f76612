package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders score, lives, coins and time in the top corners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := currentLevel(e)
	if level == nil {
		return
	}
	face := fonts.Bold.Get()
	m := cfg.HUD.Margin
	lh := cfg.HUD.LineHeight

	collected := level.CoinsTotal - len(level.Coins)
	left := []string{
		fmt.Sprintf("Score %d", level.Score),
		fmt.Sprintf("Lives %d", level.Lives),
		fmt.Sprintf("Coins %d/%d", collected, level.CoinsTotal),
	}
	for i, line := range left {
		shadowed(screen, line, face, int(m), int(m+lh*float64(i+1)), cfg.HUD.TextColor)
	}

	w := float64(screen.Bounds().Dx())
	title := level.Desc.Title()
	shadowed(screen, title, face, int(w-m)-textWidth(face, title), int(m+lh), cfg.HUD.TextColor)

	clock := FormatDuration(level.Elapsed)
	c := cfg.HUD.TextColor
	if remaining, timed := level.TimeRemaining(); timed {
		clock = FormatDuration(remaining)
		if remaining <= cfg.HUD.LowTimeSecond {
			c = cfg.HUD.LowTimeColor
		}
	}
	shadowed(screen, clock, face, int(w-m)-textWidth(face, clock), int(m+2*lh), c)
}

func shadowed(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	drawText(screen, s, face, x+2, y+2, cfg.HUD.ShadowColor)
	drawText(screen, s, face, x, y, c)
}
