package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	text.Draw(screen, s, face, x, y, c) //nolint:staticcheck
}

// drawCentered draws s with its baseline at y, centered on cx.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx float64, y int, c color.Color) {
	b := text.BoundString(face, s) //nolint:staticcheck
	drawText(screen, s, face, int(cx)-b.Dx()/2, y, c)
}

func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx() //nolint:staticcheck
}

// fade scales a premultiplied color by alpha a in [0,1].
func fade(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
