package replay

import (
	"context"
	"fmt"

	"github.com/automoto/override/core"
	"github.com/automoto/override/shared/leveldata"
)

// ctxCheckEvery is how many frames run between context checks.
const ctxCheckEvery = 600

// Result summarizes a replayed run.
type Result struct {
	LevelID  int
	Frames   int
	Outcome  core.Outcome
	Score    int
	Lives    int
	Deaths   int
	Coins    int // collected
	Elapsed  float64
	PlayerX  float64
	PlayerY  float64
	Events   int
	Finished bool // the outcome was decided before the tape ran out
}

// Run builds the tape's level from d and feeds it every frame. Playback
// stops early once the level is won or lost. opts.Seed is replaced by the
// tape's seed.
func Run(ctx context.Context, d *leveldata.Descriptor, t *Tape, opts core.Options) (Result, error) {
	if d.ID != t.LevelID {
		return Result{}, fmt.Errorf("replay: tape is for level %d, got level %d", t.LevelID, d.ID)
	}

	var rec core.Recorder
	sink := core.EventSink(&rec)
	if opts.Sink != nil {
		sink = core.MultiSink{&rec, opts.Sink}
	}
	opts.Sink = sink
	opts.Seed = t.Seed

	level, err := core.NewLevel(d, opts)
	if err != nil {
		return Result{}, fmt.Errorf("replay: build level: %w", err)
	}

	frames := 0
	for in := range t.Frames() {
		if frames%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if level.Outcome != core.Running {
			break
		}
		level.Step(in)
		frames++
	}

	return Result{
		LevelID:  d.ID,
		Frames:   frames,
		Outcome:  level.Outcome,
		Score:    level.Score,
		Lives:    level.Lives,
		Deaths:   level.Deaths,
		Coins:    level.CoinsTotal - len(level.Coins),
		Elapsed:  level.Elapsed,
		PlayerX:  level.Player.X,
		PlayerY:  level.Player.Y,
		Events:   len(rec.Events),
		Finished: level.Outcome != core.Running,
	}, nil
}
