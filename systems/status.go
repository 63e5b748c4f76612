package systems

import (
	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowStatus displays text for seconds, fading in and out inside that time.
func ShowStatus(e *ecs.ECS, message string, seconds float64) {
	st := getOrCreateStatus(e)
	fadeIn, fadeOut := cfg.Status.FadeIn, cfg.Status.FadeOut
	hold := float32(seconds) - fadeIn - fadeOut
	if hold < 0 {
		hold = 0
	}
	st.Text = message
	st.Alpha = 0
	st.Fade = gween.NewSequence(
		gween.New(0, 1, fadeIn, ease.OutQuad),
		gween.New(1, 1, hold, ease.Linear),
		gween.New(1, 0, fadeOut, ease.InQuad),
	)
}

// UpdateStatus advances the fade of the current status line.
func UpdateStatus(e *ecs.ECS) {
	st := getOrCreateStatus(e)
	if st.Fade == nil {
		return
	}
	alpha, _, done := st.Fade.Update(1 / float32(ebiten.TPS()))
	st.Alpha = alpha
	if done {
		st.Fade = nil
		st.Text = ""
		st.Alpha = 0
	}
}

// DrawStatus renders the status line centered near the top of the screen.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	st := getOrCreateStatus(e)
	if st.Text == "" || st.Alpha <= 0 {
		return
	}

	face := fonts.Bold.Get()
	w := float64(screen.Bounds().Dx())
	bounds := text.BoundString(face, st.Text) //nolint:staticcheck
	pad := 10.0
	boxW := float64(bounds.Dx()) + 2*pad
	boxH := float64(bounds.Dy()) + 2*pad
	x := (w - boxW) / 2
	y := cfg.Status.Y

	a := float64(st.Alpha)
	vector.FillRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), fade(cfg.Shadow, a), false)
	drawText(screen, st.Text, face, int(x+pad), int(y+pad)+bounds.Dy(), fade(cfg.Status.TextColor, a))
}

func getOrCreateStatus(e *ecs.ECS) *components.StatusData {
	entry, ok := components.Status.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Status))
	}
	return components.Status.Get(entry)
}
