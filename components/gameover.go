package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverNext GameOverOption = iota
	GameOverRetry
	GameOverLevelSelect
	GameOverMenu
)

// GameOverData stores the result being shown and the menu state
type GameOverData struct {
	Won       bool
	Score     int
	HighScore int
	NewBest   bool

	Options       []GameOverOption
	SelectedIndex int

	// Slide eases the panel in from below; OffsetY is its current value.
	Slide   *gween.Tween
	OffsetY float32
}

var GameOver = donburi.NewComponentType[GameOverData]()
