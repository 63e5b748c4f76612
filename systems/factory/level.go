package factory

import (
	"fmt"

	"github.com/automoto/override/archetypes"
	"github.com/automoto/override/components"
	"github.com/automoto/override/core"
	"github.com/automoto/override/replay"
	"github.com/automoto/override/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelOptions configure CreateLevel.
type LevelOptions struct {
	Sink   core.EventSink
	Seed   uint64
	Record bool
}

// CreateLevel builds the level simulation for d, wraps it in a session and
// stores both on a new Game entity. The session is not started.
func CreateLevel(ecs *ecs.ECS, d *leveldata.Descriptor, opts LevelOptions) (*donburi.Entry, error) {
	level, err := core.NewLevel(d, core.Options{Sink: opts.Sink, Seed: opts.Seed})
	if err != nil {
		return nil, fmt.Errorf("build level %d: %w", d.ID, err)
	}
	session := core.NewSession(level)

	game := archetypes.Game.Spawn(ecs)
	data := components.GameData{
		Session: session,
		LevelID: d.ID,
	}
	if opts.Record {
		data.Tape = replay.NewTape(d.ID, opts.Seed)
		data.Tape.Capture(session)
	}
	components.Game.SetValue(game, data)
	return game, nil
}
