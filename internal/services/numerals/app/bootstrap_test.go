package app

import (
	"context"
	"path/filepath"
	"testing"
)

func TestBootstrapMemoryStore(t *testing.T) {
	t.Parallel()

	service, closeFn, err := Bootstrap(context.Background(), BootstrapConfig{})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer closeFn()

	if _, err := service.CheckAnswer(context.Background(), "s1", "b1", "18"); err != nil {
		t.Fatalf("check answer: %v", err)
	}
	state, err := service.State(context.Background(), "s1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !state.Answers["b1"] {
		t.Fatalf("expected b1 solved, got %+v", state.Answers)
	}
}

func TestBootstrapSQLiteStorePersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "practice.db")
	ctx := context.Background()

	first, closeFirst, err := Bootstrap(ctx, BootstrapConfig{PracticeDBPath: path})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, err := first.CheckAnswer(ctx, "s1", "i1", "wrong"); err != nil {
		t.Fatalf("check answer: %v", err)
	}
	closeFirst()

	second, closeSecond, err := Bootstrap(ctx, BootstrapConfig{PracticeDBPath: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer closeSecond()

	attempts, err := second.Attempts(ctx, "s1", 5)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].ProblemID != "i1" || attempts[0].Correct {
		t.Fatalf("attempts = %+v", attempts)
	}
}
