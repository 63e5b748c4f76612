package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/shared/navigation"
	"github.com/automoto/override/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the result of a finished level.
type GameOverScene struct {
	ecs      *ecs.ECS
	host     Host
	result   navigation.State
	prevBest int
	once     sync.Once
}

// NewGameOverScene creates the result screen for the level in result.
// prevBest is the high score before this run.
func NewGameOverScene(host Host, result navigation.State, prevBest int) *GameOverScene {
	return &GameOverScene{host: host, result: result, prevBest: prevBest}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	nav := gs.host.Nav()
	levelID := gs.result.LevelID
	next, hasNext := nextLevel(gs.host.Levels(), levelID)

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(systems.GameOverActions{
		Next:        func() { gs.host.PlayLevel(next) },
		Retry:       func() { gs.host.PlayLevel(levelID) },
		LevelSelect: func() { logNav(nav.ShowLevelSelect()) },
		Menu:        func() { logNav(nav.ShowMenu()) },
	}))
	gs.ecs.AddRenderer(components.Default, systems.DrawGameOver)

	systems.SetupGameOver(gs.ecs, gs.result.Won, gs.result.LastScore, gs.prevBest, hasNext)
	if !gs.result.Won {
		systems.PlayMusic(gs.ecs, cfg.MusicMenu)
	}
}
