package systems

import (
	"fmt"
	"math"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// NewUpdateSettingsMenu handles keyboard and gamepad editing of settings.
// onClose runs after the settings are saved.
func NewUpdateSettingsMenu(onClose func()) ecs.System {
	return func(e *ecs.ECS) {
		s := GetOrCreateSettingsMenu(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			navigateSettings(s, -1)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			navigateSettings(s, 1)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			AdjustSetting(e, s.SelectedOption, -1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			AdjustSetting(e, s.SelectedOption, 1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if s.SelectedOption == components.SettingsOptBack {
				CloseSettings(e, onClose)
				return
			}
			AdjustSetting(e, s.SelectedOption, 1)
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			CloseSettings(e, onClose)
		}
	}
}

// navigateSettings moves the selection, skipping the resolution row while
// fullscreen.
func navigateSettings(s *components.SettingsData, dir int) {
	for {
		s.SelectedOption = components.SettingsOption(
			(int(s.SelectedOption) + dir + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			return
		}
	}
}

func isOptionHidden(s *components.SettingsData, opt components.SettingsOption) bool {
	return opt == components.SettingsOptResolution && s.Fullscreen
}

// AdjustSetting changes one option by a step in direction dir and applies
// it immediately.
func AdjustSetting(e *ecs.ECS, opt components.SettingsOption, dir int) {
	s := GetOrCreateSettingsMenu(e)
	switch opt {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = stepVolume(s.MusicVolume, dir)
		SetMusicVolume(s.MusicVolume)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = stepVolume(s.SFXVolume, dir)
		SetSFXVolume(s.SFXVolume)
		// preview at the new level
		PlaySFX(e, cfg.SoundCoin)

	case components.SettingsOptFullscreen:
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptResolution:
		n := len(cfg.SettingsMenu.Resolutions)
		s.ResolutionIndex = (s.ResolutionIndex + dir + n) % n
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// stepVolume moves v one VolumeStep and clamps it to [0,1], rounding away
// float drift.
func stepVolume(v float64, dir int) float64 {
	step := cfg.SettingsMenu.VolumeStep
	v += float64(dir) * step
	v = math.Round(v/step) * step
	return math.Min(math.Max(v, 0), 1)
}

// CloseSettings saves the current values and leaves the screen.
func CloseSettings(e *ecs.ECS, onClose func()) {
	s := GetOrCreateSettingsMenu(e)
	PlaySFX(e, cfg.SoundMenuSelect)
	_ = SaveSettings(SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	})
	call(onClose)
}

// SettingLabel returns the row caption and its current value.
func SettingLabel(s *components.SettingsData, opt components.SettingsOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music", fmt.Sprintf("%d%%", int(math.Round(s.MusicVolume*100)))
	case components.SettingsOptSFXVolume:
		return "Sound", fmt.Sprintf("%d%%", int(math.Round(s.SFXVolume*100)))
	case components.SettingsOptFullscreen:
		if s.Fullscreen {
			return "Fullscreen", "On"
		}
		return "Fullscreen", "Off"
	case components.SettingsOptResolution:
		if s.Fullscreen {
			return "Resolution", "-"
		}
		return "Resolution", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
	}
	return "Back", ""
}

// GetOrCreateSettingsMenu returns the settings singleton, seeded from the
// live audio volumes and saved window settings.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		saved := LoadSettings()
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			MusicVolume:     GetMusicVolume(),
			SFXVolume:       GetSFXVolume(),
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: saved.ResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}
