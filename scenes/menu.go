package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs  *ecs.ECS
	host Host
	once sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(host Host) *MenuScene {
	return &MenuScene{host: host}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	nav := ms.host.Nav()

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(systems.MenuActions{
		Play: func() {
			if id, ok := firstUnfinished(ms.host.Levels(), ms.host.Progress()); ok {
				ms.host.PlayLevel(id)
			}
		},
		LevelSelect: func() { logNav(nav.ShowLevelSelect()) },
		Settings:    func() { logNav(nav.OpenSettings()) },
		Quit:        ms.host.Quit,
	}))

	ms.ecs.AddRenderer(components.Default, systems.DrawMenu)

	if p := ms.host.Progress(); p.TotalPlaytime > 0 {
		systems.GetOrCreateMenu(ms.ecs).Subtitle = fmt.Sprintf("Time played %s", systems.FormatDuration(p.TotalPlaytime))
	}
	systems.PlayMusic(ms.ecs, cfg.MusicMenu)
}

func logNav(err error) {
	if err != nil {
		log.Error("screen change refused", "err", err)
	}
}
