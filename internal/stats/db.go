// internal/stats/db.go
//
// SQLite-backed history of played rounds.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Recording results and summarising them for the `stats` command and GET /stats.

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
)

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite file at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies *.sql files from fsys in lexical order, once each.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		b, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(b)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", strings.TrimSuffix(f, ".sql")).Msg("applied")
	}
	return nil
}

/* ------------------------------ results --------------------------------- */

// Result is one recorded round.
type Result struct {
	ID        string    `json:"id"`
	Mode      game.Mode `json:"mode"`
	Date      string    `json:"date,omitempty"`
	Answer    string    `json:"answer"`
	Guesses   int       `json:"guesses"`
	Misses    int       `json:"misses"`
	Won       bool      `json:"won"`
	ElapsedMs int64     `json:"elapsedMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromRound builds a Result from g. An unfinished round is recorded as lost.
func FromRound(g *game.Round, now time.Time) Result {
	return Result{
		ID:        g.ID,
		Mode:      g.Mode,
		Date:      g.Date,
		Answer:    g.Answer,
		Guesses:   len(g.Guessed),
		Misses:    g.Misses,
		Won:       g.Won,
		ElapsedMs: now.Sub(g.StartedAt).Milliseconds(),
	}
}

// Record inserts r, or updates the progress columns if the round is already
// recorded. Daily rounds are recorded when they start (as a loss) and again
// when they finish, so abandoning one still uses up the day.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO results
            (id, mode, date, answer, guesses, misses, won, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            guesses    = excluded.guesses,
            misses     = excluded.misses,
            won        = excluded.won,
            elapsed_ms = excluded.elapsed_ms`,
		r.ID, string(r.Mode), r.Date, r.Answer, r.Guesses, r.Misses, r.Won, r.ElapsedMs,
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Summary aggregates the history.
type Summary struct {
	Played     int `json:"played"`
	Won        int `json:"won"`
	BestMisses int `json:"bestMisses"` // fewest misses in a won round, -1 if none
}

// Summarize returns totals over all recorded rounds.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	var best sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(won), 0),
               MIN(CASE WHEN won = 1 THEN misses END)
        FROM results`,
	).Scan(&sum.Played, &sum.Won, &best)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	sum.BestMisses = -1
	if best.Valid {
		sum.BestMisses = int(best.Int64)
	}
	return sum, nil
}

// Recent returns the latest results, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, mode, date, answer, guesses, misses, won, elapsed_ms, created_at
        FROM results
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var mode, created string
		if err := rows.Scan(&r.ID, &mode, &r.Date, &r.Answer, &r.Guesses, &r.Misses, &r.Won, &r.ElapsedMs, &created); err != nil {
			return nil, err
		}
		r.Mode = game.Mode(mode)
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("result %s: created_at: %w", r.ID, err)
		}
		r.CreatedAt = t
		out = append(out, r)
	}
	return out, rows.Err()
}

// PlayedDaily reports whether a daily round for date has been recorded.
func (s *Store) PlayedDaily(ctx context.Context, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM results WHERE mode=? AND date=?`,
		string(game.ModeDaily), date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}
