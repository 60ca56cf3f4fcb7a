// Package storage provides an in-memory SQLite ledger of the current session's
// runs and level results. Nothing is written to disk; the ledger lives as long
// as the process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records runs and the levels played within them.
type Ledger struct {
	db *sql.DB
}

// LevelResult is one finished level of a run.
type LevelResult struct {
	ID        int64
	RunID     int64
	Level     int
	Palette   string
	Won       bool
	MovesUsed int
	Score     int // score when the level ended, before any bonus
	Bonus     int // perfect-clear bonus granted on leaving the level
	CreatedAt time.Time
}

// RunEntry is one game from new game to loss (or quit).
type RunEntry struct {
	ID         int64
	Variant    string
	Palette    string
	FinalScore int
	LastLevel  int
	Finished   bool
	CreatedAt  time.Time
}

// SessionStats aggregates the whole ledger.
type SessionStats struct {
	Runs           int
	LevelsPlayed   int
	LevelsWon      int
	PerfectClears  int
	HighScore      int
	AvgLastLevel   float64
	AvgMovesPerWin float64
}

// WinRate returns won levels over played levels.
func (s SessionStats) WinRate() float64 {
	if s.LevelsPlayed == 0 {
		return 0
	}
	return float64(s.LevelsWon) / float64(s.LevelsPlayed)
}

// OpenMemory creates an empty in-memory ledger.
func OpenMemory() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the database schema if it doesn't exist.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			palette TEXT NOT NULL,
			final_score INTEGER NOT NULL DEFAULT 0,
			last_level INTEGER NOT NULL DEFAULT 1,
			finished INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			level INTEGER NOT NULL,
			palette TEXT NOT NULL,
			won INTEGER NOT NULL,
			moves_used INTEGER NOT NULL,
			score INTEGER NOT NULL,
			bonus INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_run ON levels(run_id, level);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(final_score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// StartRun opens a new run and returns its ID.
func (l *Ledger) StartRun(variant, palette string) (int64, error) {
	res, err := l.db.Exec(
		"INSERT INTO runs (variant, palette) VALUES (?, ?)",
		variant, palette,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordLevel stores a finished level and updates its run's running totals.
func (l *Ledger) RecordLevel(r LevelResult) (int64, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO levels (run_id, level, palette, won, moves_used, score, bonus)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Level, r.Palette, r.Won, r.MovesUsed, r.Score, r.Bonus,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record level: %w", err)
	}

	upd, err := tx.Exec(
		`UPDATE runs SET final_score = ?, last_level = MAX(last_level, ?) WHERE id = ?`,
		r.Score+r.Bonus, r.Level, r.RunID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update run: %w", err)
	}
	if n, _ := upd.RowsAffected(); n == 0 {
		return 0, fmt.Errorf("storage: unknown run %d", r.RunID)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return id, nil
}

// FinishRun marks a run as over with its final score and level.
func (l *Ledger) FinishRun(runID int64, finalScore, lastLevel int) error {
	_, err := l.db.Exec(
		`UPDATE runs SET final_score = ?, last_level = ?, finished = 1 WHERE id = ?`,
		finalScore, lastLevel, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	return nil
}

// TopRuns retrieves the best N runs ordered by final score, then level reached.
func (l *Ledger) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, variant, palette, final_score, last_level, finished, created_at
		 FROM runs
		 ORDER BY final_score DESC, last_level DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.Palette, &e.FinalScore, &e.LastLevel, &e.Finished, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Results retrieves the levels of a run in play order.
func (l *Ledger) Results(runID int64) ([]LevelResult, error) {
	rows, err := l.db.Query(
		`SELECT id, run_id, level, palette, won, moves_used, score, bonus, created_at
		 FROM levels
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Level, &r.Palette, &r.Won, &r.MovesUsed, &r.Score, &r.Bonus, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestScore returns the highest final score of the session.
// Returns 0 if no runs exist.
func (l *Ledger) BestScore() (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow("SELECT MAX(final_score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for the session.
func (l *Ledger) Stats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(final_score), 0), COALESCE(AVG(last_level), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgLastLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var avgMoves sql.NullFloat64
	err = l.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(SUM(CASE WHEN bonus > 0 THEN 1 ELSE 0 END), 0),
		        AVG(CASE WHEN won = 1 THEN moves_used END)
		 FROM levels`,
	).Scan(&stats.LevelsPlayed, &stats.LevelsWon, &stats.PerfectClears, &avgMoves)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	if avgMoves.Valid {
		stats.AvgMovesPerWin = avgMoves.Float64
	}

	return stats, nil
}

// parseTime handles the datetime column arriving as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
