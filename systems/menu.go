package systems

import (
	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MenuActions are the screen changes the main menu can ask for.
type MenuActions struct {
	Play        func()
	LevelSelect func()
	Settings    func()
	Quit        func()
}

// NewUpdateMenu creates the main menu input system.
func NewUpdateMenu(actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := int(components.MainMenuExit) + 1
		menu.SelectedIndex = navigateList(e, input, menu.SelectedIndex, numOptions)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.MainMenuOption(menu.SelectedIndex) {
			case components.MainMenuPlay:
				FadeOutMusic(e)
				call(actions.Play)
			case components.MainMenuLevelSelect:
				call(actions.LevelSelect)
			case components.MainMenuSettings:
				call(actions.Settings)
			case components.MainMenuExit:
				call(actions.Quit)
			}
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			call(actions.Quit)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.C.Title, fonts.Title.Get(), width/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	if menu.Subtitle != "" {
		drawCentered(screen, menu.Subtitle, fonts.Regular.Get(), width/2, int(cfg.Menu.TitleY)+40, cfg.Menu.TextColorNormal)
	}

	listLayout{
		StartY:     cfg.Menu.MenuStartY,
		ItemHeight: cfg.Menu.MenuItemHeight,
		Gap:        cfg.Menu.MenuItemGap,
		Normal:     cfg.Menu.TextColorNormal,
		Selected:   cfg.Menu.TextColorSelected,
	}.draw(screen, cfg.Menu.MenuOptions, menu.SelectedIndex)

	drawHint(e, screen, menuHint, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
