// Package testutil holds shared test helpers.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/grindcli/grind/internal/storage"
)

// MemorySlot is an in-memory storage.Slot with injectable failures.
type MemorySlot struct {
	Data   []byte
	Stored bool
	Writes int

	ReadErr  error
	WriteErr error
}

func (s *MemorySlot) Read() ([]byte, bool, error) {
	if s.ReadErr != nil {
		return nil, false, s.ReadErr
	}
	if !s.Stored {
		return nil, false, nil
	}
	return s.Data, true, nil
}

func (s *MemorySlot) Write(data []byte) error {
	s.Writes++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Data = append([]byte(nil), data...)
	s.Stored = true
	return nil
}

// Seed pre-populates the slot as if a previous session had written payload.
func (s *MemorySlot) Seed(payload string) *MemorySlot {
	s.Data = []byte(payload)
	s.Stored = true
	return s
}

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}
