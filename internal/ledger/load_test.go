package ledger

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/testutil"
)

func TestOpen_AbsentSlotYieldsDefaults(t *testing.T) {
	pl, slot := openEmpty(t)

	snap := pl.Snapshot()
	assert.Empty(t, snap.Records)
	assert.Equal(t, domain.PeriodDaily, snap.GoalSettings.Period)
	for _, gc := range domain.GoalCategories {
		assert.Equal(t, gc.DefaultTarget, snap.GoalSettings.Goals[gc.ID].Target)
	}

	// Opening alone never writes; real stored data must not be clobbered
	// by the transient default state.
	assert.Equal(t, 0, slot.Writes)
}

func TestOpen_MalformedPayloadFallsBackToDefaults(t *testing.T) {
	slot := (&testutil.MemorySlot{}).Seed(`{"records": [truncated`)
	pl := Open(slot, quietLogger())

	snap := pl.Snapshot()
	assert.Empty(t, snap.Records)
	assert.Len(t, snap.GoalSettings.Goals, len(domain.GoalCategories))
}

func TestOpen_ReadErrorFallsBackToDefaults(t *testing.T) {
	slot := &testutil.MemorySlot{ReadErr: errors.New("io error")}
	pl := Open(slot, quietLogger())
	assert.Empty(t, pl.Snapshot().Records)
}

func TestOpen_BackfillsMarkedForReview(t *testing.T) {
	// A version-0 document written before the review flag existed.
	slot := (&testutil.MemorySlot{}).Seed(`{
		"records": [
			{"id": "r1", "title": "Two Sum", "category": "array",
			 "difficulty": "easy", "referenceUrl": "https://x", "dateSolved": "2024-01-01"}
		],
		"goalSettings": null
	}`)
	pl := Open(slot, quietLogger())

	snap := pl.Snapshot()
	require.Len(t, snap.Records, 1)
	r := snap.Records[0]
	assert.False(t, r.MarkedForReview)
	// Other fields untouched.
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "Two Sum", r.Title)
	assert.Equal(t, domain.CategoryArray, r.Category)
	assert.Equal(t, "2024-01-01", r.DateSolved)
}

func TestOpen_MissingGoalSettingsDerivesDefaults(t *testing.T) {
	slot := (&testutil.MemorySlot{}).Seed(`{"records": []}`)
	pl := Open(slot, quietLogger())

	snap := pl.Snapshot()
	assert.Equal(t, domain.PeriodDaily, snap.GoalSettings.Period)
	require.Len(t, snap.GoalSettings.Goals, len(domain.GoalCategories))
}

func TestOpen_AppendsMissingGoalCategories(t *testing.T) {
	// Subset of the catalog with a customized target: the custom target
	// survives and the missing categories come in at their defaults.
	slot := (&testutil.MemorySlot{}).Seed(`{
		"records": [],
		"goalSettings": {
			"period": "weekly",
			"goals": {
				"dp_greedy": {"categoryId": "dp_greedy", "target": 7}
			}
		}
	}`)
	pl := Open(slot, quietLogger())

	snap := pl.Snapshot()
	assert.Equal(t, domain.PeriodWeekly, snap.GoalSettings.Period)
	assert.Equal(t, 7, snap.GoalSettings.Goals["dp_greedy"].Target)
	require.Len(t, snap.GoalSettings.Goals, len(domain.GoalCategories))
	for _, gc := range domain.GoalCategories {
		if gc.ID == "dp_greedy" {
			continue
		}
		assert.Equal(t, gc.DefaultTarget, snap.GoalSettings.Goals[gc.ID].Target, gc.ID)
	}
}

func TestOpen_KeepsUnknownGoalEntries(t *testing.T) {
	slot := (&testutil.MemorySlot{}).Seed(`{
		"records": [],
		"goalSettings": {
			"period": "daily",
			"goals": {
				"dp_greedy": {"categoryId": "dp_greedy", "target": 2},
				"legacy_misc": {"categoryId": "legacy_misc", "target": 4}
			}
		}
	}`)
	pl := Open(slot, quietLogger())

	snap := pl.Snapshot()
	assert.Equal(t, 4, snap.GoalSettings.Goals["legacy_misc"].Target)
	assert.Len(t, snap.GoalSettings.Goals, len(domain.GoalCategories)+1)
}

func TestOpen_InvalidPeriodResetsToDaily(t *testing.T) {
	slot := (&testutil.MemorySlot{}).Seed(`{
		"records": [],
		"goalSettings": {"period": "fortnightly", "goals": {"dp_greedy": {"categoryId": "dp_greedy", "target": 2}}}
	}`)
	pl := Open(slot, quietLogger())
	assert.Equal(t, domain.PeriodDaily, pl.Snapshot().GoalSettings.Period)
}

func TestRoundTrip_LoadIsIdempotent(t *testing.T) {
	// Build a ledger, let it persist, reopen from the same slot: the
	// second load must be byte-for-byte stable (backfill is a no-op on a
	// canonical document).
	slot := &testutil.MemorySlot{}
	pl := Open(slot, quietLogger())

	in := sampleInput()
	in.MarkedForReview = true
	_, err := pl.Add(in)
	require.NoError(t, err)
	weekly := domain.PeriodWeekly
	require.NoError(t, pl.UpdateGoalSettings(GoalSettingsPatch{Period: &weekly}))
	firstPayload := append([]byte(nil), slot.Data...)

	reopened := Open(slot, quietLogger())
	assert.Equal(t, pl.Snapshot(), reopened.Snapshot())

	data, err := marshalLedger(reopened.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, string(firstPayload), string(data))
}

func TestMarshal_IncludesSchemaVersion(t *testing.T) {
	data, err := marshalLedger(domain.DefaultLedger())
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Contains(t, env, "schemaVersion")
	assert.Contains(t, env, "records")
	assert.Contains(t, env, "goalSettings")
}
