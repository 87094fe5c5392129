// Package ledger owns the canonical in-memory practice ledger and keeps a
// durable storage slot consistent with it. All reads and mutations go
// through a PracticeLedger instance; consumers never touch the slot
// directly.
package ledger

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/storage"
)

// ErrNotFound is returned by mutations addressing a record id that is not
// in the ledger. State is left unchanged in that case.
var ErrNotFound = errors.New("record not found")

// PracticeLedger is the single owner of the ledger state for a session.
// Mutations are applied in call order and each one is written through to
// the slot in full before the call returns. Write failures are logged and
// swallowed: the in-memory state stays the source of truth for the rest
// of the session.
type PracticeLedger struct {
	mu     sync.Mutex
	slot   storage.Slot
	logger *log.Logger

	state       domain.Ledger
	initialized bool
}

// Open loads the ledger from the slot. A missing or malformed document is
// never an error: the ledger falls back to defaults and the session starts
// empty. Loaded documents are backfilled to the current shape before any
// mutation is accepted, so the first write-through can never clobber stored
// state with a half-loaded default.
func Open(slot storage.Slot, logger *log.Logger) *PracticeLedger {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	pl := &PracticeLedger{
		slot:   slot,
		logger: logger,
	}
	pl.state = pl.load()
	pl.initialized = true
	return pl
}

// Snapshot returns a deep copy of the current ledger for read-only use.
func (pl *PracticeLedger) Snapshot() domain.Ledger {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.state.Clone()
}

// Add validates the input, assigns a fresh id and appends the record,
// preserving insertion order of existing records.
func (pl *PracticeLedger) Add(input domain.SolvedProblem) (domain.SolvedProblem, error) {
	if err := input.Validate(); err != nil {
		return domain.SolvedProblem{}, fmt.Errorf("invalid record: %w", err)
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	input.ID = uuid.NewString()
	pl.state.Records = append(pl.state.Records, input)
	pl.persist()
	return input, nil
}

// Update replaces the record with rec.ID in place, keeping its position.
func (pl *PracticeLedger) Update(rec domain.SolvedProblem) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	i := pl.state.FindRecord(rec.ID)
	if i < 0 {
		return fmt.Errorf("updating %s: %w", rec.ID, ErrNotFound)
	}
	pl.state.Records[i] = rec
	pl.persist()
	return nil
}

// Remove deletes the record with the given id. Removing an id that is
// already gone returns ErrNotFound and changes nothing, so repeated
// removes are idempotent on state.
func (pl *PracticeLedger) Remove(id string) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	i := pl.state.FindRecord(id)
	if i < 0 {
		return fmt.Errorf("removing %s: %w", id, ErrNotFound)
	}
	pl.state.Records = append(pl.state.Records[:i], pl.state.Records[i+1:]...)
	pl.persist()
	return nil
}

// ToggleReview flips the review flag and returns the new value.
func (pl *PracticeLedger) ToggleReview(id string) (bool, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	i := pl.state.FindRecord(id)
	if i < 0 {
		return false, fmt.Errorf("toggling review on %s: %w", id, ErrNotFound)
	}
	pl.state.Records[i].MarkedForReview = !pl.state.Records[i].MarkedForReview
	pl.persist()
	return pl.state.Records[i].MarkedForReview, nil
}

// GoalSettingsPatch carries the fields of an UpdateGoalSettings call.
// Nil fields are left unchanged.
type GoalSettingsPatch struct {
	Period                *domain.GoalPeriod
	Goals                 map[string]domain.Goal
	DefaultCodingLanguage *string
}

// UpdateGoalSettings shallow-merges the patch into the current settings.
// Goal entries are passed through as provided; category ids are not
// checked against the catalog here.
func (pl *PracticeLedger) UpdateGoalSettings(patch GoalSettingsPatch) error {
	if patch.Period != nil {
		if _, err := domain.ParseGoalPeriod(string(*patch.Period)); err != nil {
			return err
		}
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	if patch.Period != nil {
		pl.state.GoalSettings.Period = *patch.Period
	}
	if patch.Goals != nil {
		goals := make(map[string]domain.Goal, len(patch.Goals))
		for k, v := range patch.Goals {
			goals[k] = v
		}
		pl.state.GoalSettings.Goals = goals
	}
	if patch.DefaultCodingLanguage != nil {
		pl.state.GoalSettings.DefaultCodingLanguage = *patch.DefaultCodingLanguage
	}
	pl.persist()
	return nil
}

// persist writes the full ledger through to the slot. Callers hold the
// mutex. Writes before initialization are refused so the transient default
// ledger never overwrites real stored data during startup.
func (pl *PracticeLedger) persist() {
	if !pl.initialized {
		return
	}
	data, err := marshalLedger(pl.state)
	if err != nil {
		pl.logger.Printf("ledger: serializing state: %v", err)
		return
	}
	if err := pl.slot.Write(data); err != nil {
		pl.logger.Printf("ledger: persisting state: %v (changes kept in memory)", err)
	}
}
