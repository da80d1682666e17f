// Package memory provides an in-process practice session store.
package memory

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage"
)

// Store keeps sessions in memory. The zero value is not usable; call New.
type Store struct {
	mu       sync.Mutex
	states   map[string]practice.State
	attempts map[string][]storage.Attempt
	now      func() time.Time
}

var _ storage.SessionStore = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		states:   map[string]practice.State{},
		attempts: map[string][]storage.Attempt{},
		now:      time.Now,
	}
}

// LoadState returns the saved state of sessionID.
func (s *Store) LoadState(ctx context.Context, sessionID string) (practice.State, error) {
	if err := ctx.Err(); err != nil {
		return practice.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[strings.TrimSpace(sessionID)]
	if !ok {
		return practice.State{}, storage.ErrNotFound
	}
	return copyState(state), nil
}

// SaveState replaces the state of sessionID.
func (s *Store) SaveState(ctx context.Context, sessionID string, state practice.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[sessionID] = copyState(state)
	return nil
}

// RecordAttempt appends one attempt to the session log.
func (s *Store) RecordAttempt(ctx context.Context, attempt storage.Attempt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	attempt.SessionID = strings.TrimSpace(attempt.SessionID)
	if attempt.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(attempt.ProblemID) == "" {
		return fmt.Errorf("problem id is required")
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = s.now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[attempt.SessionID] = append(s.attempts[attempt.SessionID], attempt)
	return nil
}

// ListAttempts returns the newest attempts of sessionID first.
func (s *Store) ListAttempts(ctx context.Context, sessionID string, limit int) ([]storage.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.attempts[strings.TrimSpace(sessionID)]
	out := make([]storage.Attempt, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		out = append(out, log[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func copyState(state practice.State) practice.State {
	state.Answers = maps.Clone(state.Answers)
	if state.Answers == nil {
		state.Answers = map[string]bool{}
	}
	return state
}
