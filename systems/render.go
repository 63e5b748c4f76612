package systems

import (
	"image"
	"image/color"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/core"
	"github.com/automoto/override/shared/gamemath"
	"github.com/automoto/override/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// View maps world coordinates (y up) to screen pixels (y down) around the
// camera.
type View struct {
	CamX, CamY float64
	W, H       float64
}

// NewView builds the view for the scene's camera.
func NewView(e *ecs.ECS, screen *ebiten.Image) (View, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return View{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return View{
		CamX: camera.Position.X,
		CamY: camera.Position.Y,
		W:    float64(screen.Bounds().Dx()),
		H:    float64(screen.Bounds().Dy()),
	}, true
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return x - v.CamX + v.W/2, v.H/2 - (y - v.CamY)
}

// Visible culls rectangles entirely off screen, with a small margin.
func (v View) Visible(r gamemath.Rect) bool {
	const pad = 64
	return r.Right() >= v.CamX-v.W/2-pad && r.Left() <= v.CamX+v.W/2+pad &&
		r.Top() >= v.CamY-v.H/2-pad && r.Bottom() <= v.CamY+v.H/2+pad
}

func (v View) fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	if !v.Visible(r) {
		return
	}
	x, y := v.ToScreen(r.Left(), r.Top())
	vector.FillRect(screen, float32(x), float32(y), float32(r.Width()), float32(r.Height()), c, false)
}

func (v View) strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	if !v.Visible(r) {
		return
	}
	x, y := v.ToScreen(r.Left(), r.Top())
	vector.StrokeRect(screen, float32(x), float32(y), float32(r.Width()), float32(r.Height()), 1, c, false)
}

// DrawWorld renders level geometry, pickups, enemies and the player as flat
// shapes.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	level := currentLevel(e)
	if level == nil {
		return
	}
	view, ok := NewView(e, screen)
	if !ok {
		return
	}

	if level.Goal != nil {
		view.fillRect(screen, *level.Goal, fade(cfg.Colors.Goal, 0.6))
	}
	if end := level.Desc.EndX; end > 0 {
		b := level.Bounds()
		view.fillRect(screen, gamemath.RectFromEdges(end-2, b.Bottom(), end+2, b.Top()), fade(cfg.Colors.Goal, 0.4))
	}

	for _, s := range level.Statics {
		c := cfg.Colors.Platform
		switch {
		case s.Goal:
			c = cfg.Colors.Goal
		case s.OneWay:
			c = cfg.Colors.OneWay
		}
		view.fillRect(screen, s.Rect(), c)
	}
	for i := 0; i < level.Platforms.Len(); i++ {
		view.fillRect(screen, level.Platforms.At(i).Solid.Rect(), cfg.Colors.MovingPlatform)
	}

	for _, h := range level.Hazards {
		drawHazard(screen, view, h.Rect)
	}
	for _, c := range level.Coins {
		drawCoin(screen, view, c.Rect)
	}
	for _, en := range level.Enemies {
		if en.Active {
			view.fillRect(screen, en.Rect(), enemyColor(en.Kind))
		}
	}

	drawPlayer(e, screen, view, level)
}

var whitePixel *ebiten.Image

func drawHazard(screen *ebiten.Image, view View, r gamemath.Rect) {
	if !view.Visible(r) {
		return
	}
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	// A row of spikes filling the hazard box.
	x, y := view.ToScreen(r.Left(), r.Top())
	w, h := float32(r.Width()), float32(r.Height())
	teeth := max(int(w/16), 1)
	tw := w / float32(teeth)
	cr, cg, cb, ca := cfg.Colors.Hazard.RGBA()
	vertex := func(vx, vy float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: vx, DstY: vy, SrcX: 1, SrcY: 1,
			ColorR: float32(cr) / 0xffff, ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff, ColorA: float32(ca) / 0xffff,
		}
	}
	vs := make([]ebiten.Vertex, 0, teeth*3)
	is := make([]uint16, 0, teeth*3)
	for i := 0; i < teeth; i++ {
		left := float32(x) + float32(i)*tw
		base := uint16(len(vs))
		vs = append(vs,
			vertex(left, float32(y)+h),
			vertex(left+tw/2, float32(y)),
			vertex(left+tw, float32(y)+h),
		)
		is = append(is, base, base+1, base+2)
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{})
}

func drawCoin(screen *ebiten.Image, view View, r gamemath.Rect) {
	if !view.Visible(r) {
		return
	}
	x, y := view.ToScreen(r.X, r.Y)
	vector.FillCircle(screen, float32(x), float32(y), float32(r.HalfW), cfg.Colors.Coin, true)
}

func enemyColor(k core.EnemyKind) color.RGBA {
	switch k {
	case core.KindJumping:
		return cfg.Colors.EnemyJumping
	case core.KindFlying:
		return cfg.Colors.EnemyFlying
	case core.KindScripted:
		return cfg.Colors.EnemyScripted
	}
	return cfg.Colors.EnemyPatrol
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, view View, level *core.Level) {
	r := level.Player.Rect()
	if entry, ok := tags.Player.First(e.World); ok {
		ss := components.SquashStretch.Get(entry)
		// Scale about the feet so squash keeps the player on the ground.
		w, h := r.Width()*ss.ScaleX, r.Height()*ss.ScaleY
		r = gamemath.RectFromEdges(r.X-w/2, r.Bottom(), r.X+w/2, r.Bottom()+h)
	}
	view.fillRect(screen, r, cfg.Colors.Player)

	facing := 1.0
	if entry, ok := tags.Player.First(e.World); ok {
		facing = components.PlayerView.Get(entry).Facing
	}
	eye := gamemath.RectFromSize(r.X+facing*r.HalfW*0.45, r.Top()-r.HalfH*0.45, 5, 5)
	view.fillRect(screen, eye, cfg.White)
}
