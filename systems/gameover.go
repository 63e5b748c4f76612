package systems

import (
	"fmt"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GameOverActions are the screen changes the result screen can ask for.
type GameOverActions struct {
	Next        func()
	Retry       func()
	LevelSelect func()
	Menu        func()
}

// SetupGameOver fills the result screen. Next is offered only after a win
// with another level to go to.
func SetupGameOver(e *ecs.ECS, won bool, score, highScore int, hasNext bool) {
	g := GetOrCreateGameOver(e)
	*g = components.GameOverData{
		Won:       won,
		Score:     score,
		HighScore: max(highScore, score),
		NewBest:   score > 0 && score > highScore,
		Slide:     gween.New(float32(cfg.C.Height)/2, 0, cfg.GameOver.SlideSeconds, ease.OutCubic),
		OffsetY:   float32(cfg.C.Height) / 2,
	}
	if won && hasNext {
		g.Options = append(g.Options, components.GameOverNext)
	}
	g.Options = append(g.Options, components.GameOverRetry, components.GameOverLevelSelect, components.GameOverMenu)
}

// NewUpdateGameOver creates the result screen input system.
func NewUpdateGameOver(actions GameOverActions) ecs.System {
	return func(e *ecs.ECS) {
		g := GetOrCreateGameOver(e)
		if g.Slide != nil {
			offset, done := g.Slide.Update(1 / float32(ebiten.TPS()))
			g.OffsetY = offset
			if done {
				g.Slide = nil
			}
		}

		input := getOrCreateInput(e)
		g.SelectedIndex = navigateList(e, input, g.SelectedIndex, len(g.Options))

		if GetAction(input, cfg.ActionMenuSelect).JustPressed && len(g.Options) > 0 {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch g.Options[g.SelectedIndex] {
			case components.GameOverNext:
				call(actions.Next)
			case components.GameOverRetry:
				call(actions.Retry)
			case components.GameOverLevelSelect:
				call(actions.LevelSelect)
			case components.GameOverMenu:
				call(actions.Menu)
			}
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			call(actions.Menu)
		}
	}
}

// DrawGameOver renders the result screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	g := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	bg, titleColor, title := cfg.GameOver.LoseBackground, cfg.GameOver.LoseTitleColor, "GAME OVER"
	if g.Won {
		bg, titleColor, title = cfg.GameOver.WinBackground, cfg.GameOver.WinTitleColor, "LEVEL CLEAR"
	}
	vector.FillRect(screen, 0, 0, float32(width), float32(height), bg, false)

	dy := float64(g.OffsetY)
	drawCentered(screen, title, fonts.Title.Get(), width/2, int(cfg.GameOver.TitleY+dy), titleColor)

	score := fmt.Sprintf("Score %d   Best %d", g.Score, g.HighScore)
	drawCentered(screen, score, fonts.Bold.Get(), width/2, int(cfg.GameOver.TitleY+dy)+60, cfg.GameOver.TextColorNormal)
	if g.NewBest {
		drawCentered(screen, "New high score!", fonts.Regular.Get(), width/2, int(cfg.GameOver.TitleY+dy)+95, cfg.Gold)
	}

	labels := make([]string, len(g.Options))
	for i, opt := range g.Options {
		labels[i] = gameOverLabel(opt)
	}
	listLayout{
		StartY:     cfg.GameOver.MenuStartY + dy,
		ItemHeight: cfg.GameOver.MenuItemHeight,
		Gap:        cfg.GameOver.MenuItemGap,
		Normal:     cfg.GameOver.TextColorNormal,
		Selected:   cfg.GameOver.TextColorSelected,
	}.draw(screen, labels, g.SelectedIndex)

	drawHint(e, screen, menuHint, cfg.GameOver.TextColorNormal)
}

func gameOverLabel(opt components.GameOverOption) string {
	switch opt {
	case components.GameOverNext:
		return "Next Level"
	case components.GameOverRetry:
		return "Retry"
	case components.GameOverLevelSelect:
		return "Level Select"
	case components.GameOverMenu:
		return "Main Menu"
	}
	return ""
}

// GetOrCreateGameOver returns the singleton GameOver component.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}
