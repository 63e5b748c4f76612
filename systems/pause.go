package systems

import (
	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// PauseActions are the screen changes the pause menu can ask for.
type PauseActions struct {
	Pause    func()
	Resume   func()
	Restart  func()
	Settings func()
	Quit     func()
}

func call(f func()) {
	if f != nil {
		f()
	}
}

// NewUpdatePause handles the pause toggle and menu navigation.
// It should run after UpdateInput and before the simulation.
func NewUpdatePause(actions PauseActions) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if level := currentLevel(e); level != nil && level.Outcome != core.Running {
			return
		}

		if GetAction(input, cfg.ActionPause).JustPressed {
			if pause.IsPaused {
				resume(e, pause, actions)
			} else {
				pause.IsPaused = true
				pause.SelectedOption = components.MenuResume
				PauseMusic(e)
				call(actions.Pause)
			}
			return
		}

		if !pause.IsPaused {
			if GetAction(input, cfg.ActionRestart).JustPressed {
				call(actions.Restart)
			}
			return
		}

		numOptions := int(components.MenuExit) + 1
		pause.SelectedOption = components.PauseMenuOption(navigateList(e, input, int(pause.SelectedOption), numOptions))

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				resume(e, pause, actions)
			case components.MenuRestart:
				call(actions.Restart)
			case components.MenuSettings:
				call(actions.Settings)
			case components.MenuExit:
				call(actions.Quit)
			}
		}
	}
}

func resume(e *ecs.ECS, pause *components.PauseData, actions PauseActions) {
	pause.IsPaused = false
	ResumeMusic(e)
	call(actions.Resume)
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	layout := listLayout{
		ItemHeight: cfg.Pause.MenuItemHeight,
		Gap:        cfg.Pause.MenuItemGap,
		Normal:     cfg.Pause.TextColorNormal,
		Selected:   cfg.Pause.TextColorSelected,
	}
	layout.StartY = (height - layout.height(len(cfg.Pause.MenuOptions))) / 2
	layout.draw(screen, cfg.Pause.MenuOptions, int(pause.SelectedOption))

	drawHint(e, screen, getPauseHint, cfg.Pause.TextColorNormal)
}

func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
