// Package navigation owns which screen the game shows. Every change goes
// through an explicit transition table, and the controller drives the
// lifecycle of the running level session.
package navigation

import (
	"fmt"
	"slices"
)

// Screen is one top-level view.
type Screen int

const (
	Menu Screen = iota
	LevelSelect
	Playing
	Paused
	GameOver
	Settings
)

func (s Screen) String() string {
	switch s {
	case Menu:
		return "menu"
	case LevelSelect:
		return "level select"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	case Settings:
		return "settings"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

var transitions = map[Screen][]Screen{
	Menu:        {LevelSelect, Playing, Settings},
	LevelSelect: {Menu, Playing},
	Playing:     {Paused, GameOver, Playing},
	Paused:      {Playing, Menu, Settings},
	GameOver:    {Playing, Menu, LevelSelect},
	Settings:    {Menu, Paused},
}

// Allowed reports whether the table permits moving from one screen to
// another.
func Allowed(from, to Screen) bool {
	return slices.Contains(transitions[from], to)
}

// TransitionError is returned for a move the table does not allow.
type TransitionError struct {
	From, To Screen
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("navigation: cannot go from %s to %s", e.From, e.To)
}

// Session is the part of a level session the controller drives.
type Session interface {
	Start()
	Pause()
	Resume()
	Teardown()
}

// State is what a view needs to render the current screen.
type State struct {
	Screen    Screen
	LevelID   int
	LastScore int
	Won       bool

	// SettingsReturn is where closing settings goes back to.
	SettingsReturn Screen
}

// Controller holds exactly one current screen.
type Controller struct {
	state   State
	session Session
	show    func(State)
}

// NewController starts on the menu and calls show for it. show is called
// after every successful transition.
func NewController(show func(State)) *Controller {
	if show == nil {
		show = func(State) {}
	}
	c := &Controller{state: State{Screen: Menu}, show: show}
	show(c.state)
	return c
}

func (c *Controller) Current() Screen { return c.state.Screen }
func (c *Controller) State() State    { return c.state }

// Session returns the live level session, nil when none.
func (c *Controller) Session() Session { return c.session }

func (c *Controller) move(to Screen) error {
	if !Allowed(c.state.Screen, to) {
		return &TransitionError{From: c.state.Screen, To: to}
	}
	c.state.Screen = to
	c.show(c.state)
	return nil
}

func (c *Controller) endSession() {
	if c.session != nil {
		c.session.Teardown()
		c.session = nil
	}
}

// ShowMenu returns to the main menu, ending any level in progress.
func (c *Controller) ShowMenu() error {
	if !Allowed(c.state.Screen, Menu) {
		return &TransitionError{From: c.state.Screen, To: Menu}
	}
	c.endSession()
	return c.move(Menu)
}

func (c *Controller) ShowLevelSelect() error {
	return c.move(LevelSelect)
}

// StartLevel replaces any running session with s and starts it.
func (c *Controller) StartLevel(levelID int, s Session) error {
	if !Allowed(c.state.Screen, Playing) {
		return &TransitionError{From: c.state.Screen, To: Playing}
	}
	c.endSession()
	c.session = s
	c.state.LevelID = levelID
	c.state.Won = false
	if s != nil {
		s.Start()
	}
	return c.move(Playing)
}

// Pause freezes the running level.
func (c *Controller) Pause() error {
	if c.state.Screen != Playing {
		return &TransitionError{From: c.state.Screen, To: Paused}
	}
	if c.session != nil {
		c.session.Pause()
	}
	return c.move(Paused)
}

// Resume continues the paused level.
func (c *Controller) Resume() error {
	if c.state.Screen != Paused {
		return &TransitionError{From: c.state.Screen, To: Playing}
	}
	if c.session != nil {
		c.session.Resume()
	}
	return c.move(Playing)
}

// ShowGameOver ends the level and shows its result.
func (c *Controller) ShowGameOver(won bool, score int) error {
	if !Allowed(c.state.Screen, GameOver) {
		return &TransitionError{From: c.state.Screen, To: GameOver}
	}
	c.endSession()
	c.state.Won = won
	c.state.LastScore = score
	return c.move(GameOver)
}

// OpenSettings shows settings and remembers where to return.
func (c *Controller) OpenSettings() error {
	if !Allowed(c.state.Screen, Settings) {
		return &TransitionError{From: c.state.Screen, To: Settings}
	}
	c.state.SettingsReturn = c.state.Screen
	return c.move(Settings)
}

// CloseSettings goes back to the screen settings was opened from. A level
// paused underneath stays paused.
func (c *Controller) CloseSettings() error {
	if c.state.Screen != Settings {
		return &TransitionError{From: c.state.Screen, To: c.state.SettingsReturn}
	}
	return c.move(c.state.SettingsReturn)
}
