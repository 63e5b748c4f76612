package progress

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/automoto/override/core"
)

// Recorder is a core.EventSink that stores finished runs. Store failures are
// logged and dropped so a broken save never stops the game.
type Recorder struct {
	Store   Store
	LevelID int
	Timeout time.Duration

	// OnSaved, if set, runs after a result is stored.
	OnSaved func(Result)
}

func (r *Recorder) Emit(e core.Event) {
	var res Result
	switch ev := e.(type) {
	case core.LevelWon:
		res = Result{LevelID: r.LevelID, Score: ev.Score, Won: true, Elapsed: ev.Elapsed}
	case core.LevelLost:
		res = Result{LevelID: r.LevelID, Score: ev.Score, Elapsed: ev.Elapsed}
	default:
		return
	}
	if r.Store == nil {
		return
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := r.Store.RecordResult(ctx, res); err != nil {
		log.Warn("could not save progress", "level", r.LevelID, "err", err)
		return
	}
	if r.OnSaved != nil {
		r.OnSaved(res)
	}
}
