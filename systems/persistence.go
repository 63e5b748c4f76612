package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/progress"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

// DefaultSettings are used until the player saves their own.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		MusicVolume:     cfg.Audio.DefaultMusicVol,
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
	}
}

var gdataManager *gdata.Manager

// InitPersistence opens the settings folder. Without it settings still work
// but are not kept between runs.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{AppName: progress.AppName})
	if err != nil {
		log.Warn("settings will not be saved", "err", err)
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or the defaults when there are
// none or they cannot be read.
func LoadSettings() SavedSettings {
	s := DefaultSettings()
	if gdataManager == nil {
		return s
	}
	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return s
	}
	if data == nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return DefaultSettings()
	}
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	return s
}

// SaveSettings writes settings to disk.
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySettings pushes settings into audio and the window.
func ApplySettings(s SavedSettings) {
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)

	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
