package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuLevelSelect
	MainMenuSettings
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	// Subtitle shows total playtime once any level has been played.
	Subtitle string
}

var Menu = donburi.NewComponentType[MenuData]()

// LevelEntry is one row on the level select screen.
type LevelEntry struct {
	ID        int
	Title     string
	HighScore int
	Completed bool
	BestTime  float64
}

// LevelSelectData stores the level list and selection
type LevelSelectData struct {
	Entries       []LevelEntry
	SelectedIndex int
}

var LevelSelect = donburi.NewComponentType[LevelSelectData]()
