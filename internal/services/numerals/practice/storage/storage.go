// Package storage defines persistence contracts for practice sessions.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
)

// ErrNotFound indicates a requested session record is missing.
var ErrNotFound = errors.New("record not found")

// Attempt is one graded answer submission.
type Attempt struct {
	SessionID string
	ProblemID string
	Answer    string
	Correct   bool
	CreatedAt time.Time
}

// SessionStore persists practice state and the attempt log per session.
type SessionStore interface {
	LoadState(ctx context.Context, sessionID string) (practice.State, error)
	SaveState(ctx context.Context, sessionID string, state practice.State) error
	RecordAttempt(ctx context.Context, attempt Attempt) error
	// ListAttempts returns the newest attempts first. limit <= 0 means all.
	ListAttempts(ctx context.Context, sessionID string, limit int) ([]Attempt, error)
}
