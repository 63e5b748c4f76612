package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lists every level with the player's best results.
type LevelSelectScene struct {
	ecs  *ecs.ECS
	host Host
	once sync.Once
}

func NewLevelSelectScene(host Host) *LevelSelectScene {
	return &LevelSelectScene{host: host}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	ls.ecs.AddSystem(systems.UpdateAudio)
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.NewUpdateLevelSelect(
		ls.host.PlayLevel,
		func() { logNav(ls.host.Nav().ShowMenu()) },
	))
	ls.ecs.AddRenderer(components.Default, systems.DrawLevelSelect)

	p := ls.host.Progress()
	data := systems.GetOrCreateLevelSelect(ls.ecs)
	for _, d := range ls.host.Levels() {
		rec := p.Record(d.ID)
		data.Entries = append(data.Entries, components.LevelEntry{
			ID:        d.ID,
			Title:     d.Title(),
			HighScore: rec.HighScore,
			Completed: rec.Completed,
			BestTime:  rec.BestTime,
		})
	}
	systems.PlayMusic(ls.ecs, cfg.MusicMenu)
}
