package components

import (
	"github.com/automoto/override/core"
	"github.com/automoto/override/replay"
	"github.com/yohamta/donburi"
)

// GameData ties a scene's world to the running level session.
type GameData struct {
	Session *core.Session
	LevelID int

	// Events is filled by the level's sink while the session advances and
	// drained once per frame.
	Events []core.Event

	// EndFrames counts frames since the outcome was decided.
	EndFrames int
	Reported  bool

	// Tape records the run when recording is enabled.
	Tape *replay.Tape
}

func (g *GameData) Level() *core.Level { return g.Session.Level() }

var Game = donburi.NewComponentType[GameData]()
