package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/override/components"
	"github.com/automoto/override/systems"
	"github.com/automoto/override/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsScene edits audio and display settings.
type SettingsScene struct {
	ecs   *ecs.ECS
	host  Host
	panel *ui.SettingsUI
	once  sync.Once
}

func NewSettingsScene(host Host) *SettingsScene {
	return &SettingsScene{host: host}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())
	back := func() { logNav(ss.host.Nav().CloseSettings()) }

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSettingsMenu(back))

	panel, err := ui.NewSettingsUI(ss.ecs, back)
	if err != nil {
		log.Error("settings panel unavailable", "err", err)
	} else {
		ss.panel = panel
		ss.ecs.AddSystem(func(_ *ecs.ECS) {
			ss.panel.Refresh()
			ss.panel.UI.Update()
		})
	}

	ss.ecs.AddRenderer(components.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		if ss.panel != nil {
			ss.panel.UI.Draw(screen)
		}
	})
}
