// Package sqlite provides a SQLite-backed practice session store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/numerals.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage/sqlite/migrations"
)

// Store persists practice sessions in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.SessionStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite practice store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	sqlDB, err := sqlitemigrate.Open(ctx, path, migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// LoadState returns the saved state of sessionID.
func (s *Store) LoadState(ctx context.Context, sessionID string) (practice.State, error) {
	if err := s.ready(ctx); err != nil {
		return practice.State{}, err
	}
	sessionID = strings.TrimSpace(sessionID)

	var (
		difficulty string
		problemID  string
		feedback   string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT difficulty, current_problem_id, feedback FROM practice_sessions WHERE session_id = ?`,
		sessionID,
	).Scan(&difficulty, &problemID, &feedback)
	if errors.Is(err, sql.ErrNoRows) {
		return practice.State{}, storage.ErrNotFound
	}
	if err != nil {
		return practice.State{}, fmt.Errorf("load session: %w", err)
	}

	state := practice.State{
		Difficulty:       practice.Difficulty(difficulty),
		CurrentProblemID: problemID,
		Feedback:         practice.Feedback(feedback),
		Answers:          map[string]bool{},
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT problem_id, correct FROM practice_answers WHERE session_id = ?`,
		sessionID,
	)
	if err != nil {
		return practice.State{}, fmt.Errorf("load answers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id      string
			correct bool
		)
		if err := rows.Scan(&id, &correct); err != nil {
			return practice.State{}, fmt.Errorf("scan answer: %w", err)
		}
		state.Answers[id] = correct
	}
	if err := rows.Err(); err != nil {
		return practice.State{}, fmt.Errorf("iterate answers: %w", err)
	}
	return state, nil
}

// SaveState replaces the state of sessionID in one transaction.
func (s *Store) SaveState(ctx context.Context, sessionID string, state practice.State) (err error) {
	if err := s.ready(ctx); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO practice_sessions (session_id, difficulty, current_problem_id, feedback, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   difficulty = excluded.difficulty,
		   current_problem_id = excluded.current_problem_id,
		   feedback = excluded.feedback,
		   updated_at = excluded.updated_at`,
		sessionID, string(state.Difficulty), state.CurrentProblemID, string(state.Feedback), toMillis(s.now()),
	); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM practice_answers WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("clear answers: %w", err)
	}
	for id, correct := range state.Answers {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO practice_answers (session_id, problem_id, correct) VALUES (?, ?, ?)`,
			sessionID, id, correct,
		); err != nil {
			return fmt.Errorf("insert answer %s: %w", id, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RecordAttempt appends one attempt to the session log.
func (s *Store) RecordAttempt(ctx context.Context, attempt storage.Attempt) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	sessionID := strings.TrimSpace(attempt.SessionID)
	problemID := strings.TrimSpace(attempt.ProblemID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if problemID == "" {
		return fmt.Errorf("problem id is required")
	}
	createdAt := attempt.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO practice_attempts (session_id, problem_id, answer, correct, created_at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, problemID, attempt.Answer, attempt.Correct, toMillis(createdAt),
	); err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// ListAttempts returns the newest attempts of sessionID first.
func (s *Store) ListAttempts(ctx context.Context, sessionID string, limit int) ([]storage.Attempt, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	query := `SELECT session_id, problem_id, answer, correct, created_at
		FROM practice_attempts WHERE session_id = ? ORDER BY id DESC`
	args := []any{strings.TrimSpace(sessionID)}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []storage.Attempt
	for rows.Next() {
		var (
			attempt   storage.Attempt
			createdAt int64
		)
		if err := rows.Scan(&attempt.SessionID, &attempt.ProblemID, &attempt.Answer, &attempt.Correct, &createdAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempt.CreatedAt = fromMillis(createdAt)
		out = append(out, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
