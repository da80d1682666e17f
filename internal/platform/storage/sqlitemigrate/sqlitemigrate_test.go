package sqlitemigrate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"migrations/001_items.sql": {Data: []byte(`-- +migrate Up
CREATE TABLE items (id TEXT PRIMARY KEY);
-- +migrate Down
DROP TABLE items;
`)},
		"migrations/002_notes.sql": {Data: []byte(`-- +migrate Up
CREATE TABLE notes (id TEXT PRIMARY KEY, body TEXT NOT NULL);
`)},
		"migrations/README.md": {Data: []byte("ignored")},
	}
}

func TestOpenAppliesMigrationsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, dbPath, testFS(), "migrations")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.ExecContext(ctx, "INSERT INTO notes (id, body) VALUES ('n1', 'hi')"); err != nil {
		t.Fatalf("insert note: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	db, err = Open(ctx, dbPath, testFS(), "migrations")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+migrationTable).Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("applied migrations = %d, want 2", count)
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		t.Fatalf("count notes: %v", err)
	}
	if count != 1 {
		t.Fatalf("notes = %d, want 1", count)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), "  ", testFS(), "migrations"); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	t.Parallel()

	if err := ApplyMigrations(context.Background(), nil, testFS(), "migrations"); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "up and down", content: "-- +migrate Up\nA;\n-- +migrate Down\nB;", want: "A;"},
		{name: "up only", content: "-- +migrate Up\nA;", want: "A;"},
		{name: "no markers", content: "A;", want: "A;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := strings.TrimSpace(ExtractUpMigration(tt.content)); got != tt.want {
				t.Fatalf("ExtractUpMigration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	if got := DSN("a.db"); got != "a.db?"+DSNPragmas {
		t.Fatalf("DSN = %q", got)
	}
	if got := DSN("file:a.db?mode=rwc"); got != "file:a.db?mode=rwc&"+DSNPragmas {
		t.Fatalf("DSN with query = %q", got)
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	t.Parallel()

	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error should not match")
	}
	if !IsAlreadyExistsError(errors.New("table items already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: body")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("unexpected match")
	}
}
