package components

import (
	"github.com/yohamta/donburi"
)

// SettingsOption is one row of the settings screen
type SettingsOption int

const (
	SettingsOptMusicVolume SettingsOption = iota
	SettingsOptSFXVolume
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptBack
)

// SettingsData holds the values edited on the settings screen
type SettingsData struct {
	MusicVolume     float64 // 0.0 - 1.0
	SFXVolume       float64
	Fullscreen      bool
	ResolutionIndex int

	SelectedOption SettingsOption
}

var Settings = donburi.NewComponentType[SettingsData]()
