package progress

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, registers "sqlite"
)

// SQLiteStore keeps every run in a table and derives Progress from it.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one stored result.
type Run struct {
	Result
	PlayedAt time.Time
}

// OpenSQLite creates or opens a database at path, creating parent
// directories and the schema as needed. A leading ~ expands to the home
// directory.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("progress: expand home: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("progress: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("progress: open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: connect: %w", err)
	}

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: migrate: %w", err)
	}
	return s, nil
}

// DefaultSQLitePath is where the CLI keeps the database.
func DefaultSQLitePath() string {
	return filepath.Join("~", "."+AppName, "progress.db")
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL,
			elapsed REAL NOT NULL,
			played_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level_id);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *SQLiteStore) RecordResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (level_id, score, won, elapsed, played_at) VALUES (?, ?, ?, ?, ?)`,
		r.LevelID, r.Score, boolInt(r.Won), r.Elapsed, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("progress: record result: %w", err)
	}
	return nil
}

// Load folds all runs, oldest first, into Progress.
func (s *SQLiteStore) Load(ctx context.Context) (*Progress, error) {
	runs, err := s.query(ctx, `SELECT level_id, score, won, elapsed, played_at FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	p := New()
	for _, run := range runs {
		p.Apply(run.Result, run.PlayedAt)
	}
	return p, nil
}

// RecentRuns returns the latest runs, newest first. levelID 0 means all
// levels.
func (s *SQLiteStore) RecentRuns(ctx context.Context, levelID, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	if levelID == 0 {
		return s.query(ctx,
			`SELECT level_id, score, won, elapsed, played_at FROM runs ORDER BY id DESC LIMIT ?`, limit)
	}
	return s.query(ctx,
		`SELECT level_id, score, won, elapsed, played_at FROM runs WHERE level_id = ? ORDER BY id DESC LIMIT ?`,
		levelID, limit)
}

func (s *SQLiteStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return fmt.Errorf("progress: reset: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("progress: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run    Run
			won    int
			millis int64
		)
		if err := rows.Scan(&run.LevelID, &run.Score, &won, &run.Elapsed, &millis); err != nil {
			return nil, fmt.Errorf("progress: scan run: %w", err)
		}
		run.Won = won != 0
		run.PlayedAt = time.UnixMilli(millis)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress: iterate runs: %w", err)
	}
	return runs, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
