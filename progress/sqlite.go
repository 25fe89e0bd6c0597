package progress

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/engine"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteStore keeps a local history of session results
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLite opens (creating if missing) the database at path and applies migrations
func OpenSQLite(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One writer keeps the recorder goroutines from contending on the file lock
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, log: logger.With().Str("component", "sqlite").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate applies embedded migrations in lexical order, each recorded in _migrations
func (s *SQLiteStore) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := s.db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrationFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
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
		s.log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Name implements Sink
func (s *SQLiteStore) Name() string { return "sqlite" }

// Save implements Sink
func (s *SQLiteStore) Save(ctx context.Context, r engine.Result) error {
	correct, err := json.Marshal(nonNil(r.CollectedCorrect))
	if err != nil {
		return err
	}
	wrong, err := json.Marshal(nonNil(r.CollectedWrong))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO results
            (email, region, final_score, end_reason, total_correct,
             collected_correct, collected_wrong, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Email, r.Region, r.FinalScore, r.EndReason.String(), r.TotalCorrect,
		string(correct), string(wrong), r.StartedAt.UTC(), r.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Recent returns up to limit results for email, newest first
func (s *SQLiteStore) Recent(ctx context.Context, email string, limit int) ([]engine.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT email, region, final_score, end_reason, total_correct,
               collected_correct, collected_wrong, started_at, finished_at
        FROM results
        WHERE email = ?
        ORDER BY finished_at DESC, id DESC
        LIMIT ?`, email, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []engine.Result
	for rows.Next() {
		var (
			r              engine.Result
			reason         string
			correct, wrong string
			start, finish  time.Time
		)
		if err := rows.Scan(&r.Email, &r.Region, &r.FinalScore, &reason, &r.TotalCorrect,
			&correct, &wrong, &start, &finish); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(correct), &r.CollectedCorrect); err != nil {
			return nil, fmt.Errorf("decode collected_correct: %w", err)
		}
		if err := json.Unmarshal([]byte(wrong), &r.CollectedWrong); err != nil {
			return nil, fmt.Errorf("decode collected_wrong: %w", err)
		}
		r.EndReason = engine.ParseEndReason(reason)
		r.StartedAt, r.FinishedAt = start, finish
		out = append(out, r)
	}
	return out, rows.Err()
}

// Best returns the highest recorded score for email
func (s *SQLiteStore) Best(ctx context.Context, email string) (int, bool, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(final_score) FROM results WHERE email = ?`, email,
	).Scan(&best); err != nil {
		return 0, false, fmt.Errorf("query best: %w", err)
	}
	return int(best.Int64), best.Valid, nil
}

// Close releases the database
func (s *SQLiteStore) Close() error { return s.db.Close() }

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
