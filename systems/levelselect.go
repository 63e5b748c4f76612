package systems

import (
	"fmt"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateLevelSelect creates the level list input system. play receives
// the chosen level ID.
func NewUpdateLevelSelect(play func(id int), back func()) ecs.System {
	return func(e *ecs.ECS) {
		ls := GetOrCreateLevelSelect(e)
		input := getOrCreateInput(e)

		ls.SelectedIndex = navigateList(e, input, ls.SelectedIndex, len(ls.Entries))

		if GetAction(input, cfg.ActionMenuSelect).JustPressed && len(ls.Entries) > 0 {
			PlaySFX(e, cfg.SoundMenuSelect)
			FadeOutMusic(e)
			if play != nil {
				play(ls.Entries[ls.SelectedIndex].ID)
			}
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			call(back)
		}
	}
}

// DrawLevelSelect renders one row per level with its best results.
func DrawLevelSelect(e *ecs.ECS, screen *ebiten.Image) {
	ls := GetOrCreateLevelSelect(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
	drawCentered(screen, "Select Level", fonts.Title.Get(), width/2, int(cfg.Menu.TitleY)-40, cfg.Menu.TitleColor)

	labels := make([]string, len(ls.Entries))
	for i, entry := range ls.Entries {
		labels[i] = levelLabel(entry)
	}
	listLayout{
		StartY:     cfg.Menu.MenuStartY - 60,
		ItemHeight: cfg.Menu.MenuItemHeight,
		Gap:        cfg.Menu.MenuItemGap,
		Normal:     cfg.Menu.TextColorNormal,
		Selected:   cfg.Menu.TextColorSelected,
	}.draw(screen, labels, ls.SelectedIndex)

	drawHint(e, screen, menuHint, cfg.Menu.TextColorNormal)
}

func levelLabel(entry components.LevelEntry) string {
	label := fmt.Sprintf("%d. %s", entry.ID, entry.Title)
	if entry.HighScore > 0 {
		label += fmt.Sprintf("   best %d", entry.HighScore)
	}
	if entry.Completed {
		label += fmt.Sprintf("   cleared %s", FormatDuration(entry.BestTime))
	}
	return label
}

// FormatDuration renders seconds as m:ss.t.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(seconds * 10)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// GetOrCreateLevelSelect returns the singleton LevelSelect component.
func GetOrCreateLevelSelect(e *ecs.ECS) *components.LevelSelectData {
	entry, ok := components.LevelSelect.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.LevelSelect))
	}
	return components.LevelSelect.Get(entry)
}
