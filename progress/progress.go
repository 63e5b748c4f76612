// Package progress persists what the player has achieved across runs: high
// scores, completed levels, times and total playtime.
package progress

import (
	"context"
	"slices"
	"time"
)

// Result is the outcome of one finished level run.
type Result struct {
	LevelID int
	Score   int
	Won     bool
	Elapsed float64 // seconds
}

// LevelRecord aggregates every run of one level.
type LevelRecord struct {
	HighScore int     `json:"highScore"`
	Completed bool    `json:"completed"`
	BestTime  float64 `json:"bestTime,omitempty"` // fastest win, 0 when never won
	LastTime  float64 `json:"lastTime"`
	Plays     int     `json:"plays"`
}

// Progress is the whole persisted state.
type Progress struct {
	Levels        map[int]*LevelRecord `json:"levels"`
	TotalPlaytime float64              `json:"totalPlaytime"`
	LastPlayed    time.Time            `json:"lastPlayed"`
}

// New returns empty progress.
func New() *Progress {
	return &Progress{Levels: map[int]*LevelRecord{}}
}

// Apply folds one result into p.
func (p *Progress) Apply(r Result, at time.Time) {
	if p.Levels == nil {
		p.Levels = map[int]*LevelRecord{}
	}
	rec := p.Levels[r.LevelID]
	if rec == nil {
		rec = &LevelRecord{}
		p.Levels[r.LevelID] = rec
	}
	rec.Plays++
	rec.HighScore = max(rec.HighScore, r.Score)
	rec.LastTime = r.Elapsed
	if r.Won {
		rec.Completed = true
		if rec.BestTime == 0 || r.Elapsed < rec.BestTime {
			rec.BestTime = r.Elapsed
		}
	}
	p.TotalPlaytime += r.Elapsed
	p.LastPlayed = at
}

// Record returns the record for a level, or a zero record.
func (p *Progress) Record(levelID int) LevelRecord {
	if rec := p.Levels[levelID]; rec != nil {
		return *rec
	}
	return LevelRecord{}
}

// HighScore is the best score on a level, 0 if never played.
func (p *Progress) HighScore(levelID int) int { return p.Record(levelID).HighScore }

// Completed reports whether a level has ever been won.
func (p *Progress) Completed(levelID int) bool { return p.Record(levelID).Completed }

// LevelIDs lists played levels in ascending order.
func (p *Progress) LevelIDs() []int {
	ids := make([]int, 0, len(p.Levels))
	for id := range p.Levels {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Store loads and saves Progress.
type Store interface {
	Load(ctx context.Context) (*Progress, error)
	RecordResult(ctx context.Context, r Result) error
	Reset(ctx context.Context) error
	Close() error
}
