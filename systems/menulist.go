package systems

import (
	"image/color"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// navigateList moves a selection up or down with wrap-around.
func navigateList(e *ecs.ECS, input *components.InputData, index, n int) int {
	if n == 0 {
		return 0
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		index = (index - 1 + n) % n
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		index = (index + 1) % n
	}
	return index
}

// listLayout positions a vertical list of centered menu items.
type listLayout struct {
	StartY     float64
	ItemHeight float64
	Gap        float64
	Normal     color.RGBA
	Selected   color.RGBA
}

func (l listLayout) draw(screen *ebiten.Image, labels []string, selected int) {
	face := fonts.Bold.Get()
	cx := float64(screen.Bounds().Dx()) / 2
	for i, label := range labels {
		y := l.StartY + float64(i)*(l.ItemHeight+l.Gap)
		c := l.Normal
		if i == selected {
			c = l.Selected
		}
		drawCentered(screen, label, face, cx, int(y+l.ItemHeight), c)
	}
}

func (l listLayout) height(n int) float64 {
	return float64(n) * (l.ItemHeight + l.Gap)
}

// drawHint writes a navigation hint along the bottom edge.
func drawHint(e *ecs.ECS, screen *ebiten.Image, hint func(components.InputMethod) string, c color.Color) {
	input := getOrCreateInput(e)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawCentered(screen, hint(input.LastInputMethod), fonts.Small.Get(), float64(w)/2, h-12, c)
}

func menuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   B: Back"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Back"
}
