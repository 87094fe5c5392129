package ledger

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/testutil"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func openEmpty(t *testing.T) (*PracticeLedger, *testutil.MemorySlot) {
	t.Helper()
	slot := &testutil.MemorySlot{}
	return Open(slot, quietLogger()), slot
}

func sampleInput() domain.SolvedProblem {
	return domain.SolvedProblem{
		Title:        "Two Sum",
		Category:     domain.CategoryArray,
		Difficulty:   domain.DifficultyEasy,
		ReferenceURL: "https://x",
		DateSolved:   "2024-01-01",
	}
}

func TestAdd_AssignsUniqueIDsAndPreservesOrder(t *testing.T) {
	pl, _ := openEmpty(t)

	titles := []string{"Two Sum", "Valid Anagram", "LRU Cache", "Course Schedule"}
	seen := make(map[string]bool)
	for _, title := range titles {
		in := sampleInput()
		in.Title = title
		rec, err := pl.Add(in)
		require.NoError(t, err)
		require.NotEmpty(t, rec.ID)
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}

	snap := pl.Snapshot()
	require.Len(t, snap.Records, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, snap.Records[i].Title)
	}
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	pl, slot := openEmpty(t)
	writesBefore := slot.Writes

	cases := []func(*domain.SolvedProblem){
		func(p *domain.SolvedProblem) { p.Title = "" },
		func(p *domain.SolvedProblem) { p.Category = "recursion" },
		func(p *domain.SolvedProblem) { p.Difficulty = "brutal" },
		func(p *domain.SolvedProblem) { p.DateSolved = "not-a-date" },
	}
	for _, mutate := range cases {
		in := sampleInput()
		mutate(&in)
		_, err := pl.Add(in)
		require.Error(t, err)
	}

	assert.Empty(t, pl.Snapshot().Records)
	assert.Equal(t, writesBefore, slot.Writes, "rejected input must not persist")
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	pl, _ := openEmpty(t)
	first, err := pl.Add(sampleInput())
	require.NoError(t, err)
	second := sampleInput()
	second.Title = "Valid Anagram"
	_, err = pl.Add(second)
	require.NoError(t, err)

	first.Title = "Two Sum II"
	first.Difficulty = domain.DifficultyMedium
	require.NoError(t, pl.Update(first))

	snap := pl.Snapshot()
	require.Len(t, snap.Records, 2)
	assert.Equal(t, "Two Sum II", snap.Records[0].Title)
	assert.Equal(t, domain.DifficultyMedium, snap.Records[0].Difficulty)
	assert.Equal(t, "Valid Anagram", snap.Records[1].Title)
}

func TestUpdate_UnknownIDLeavesStateUnchanged(t *testing.T) {
	pl, _ := openEmpty(t)
	rec, err := pl.Add(sampleInput())
	require.NoError(t, err)

	ghost := rec
	ghost.ID = "no-such-id"
	ghost.Title = "changed"
	err = pl.Update(ghost)
	require.ErrorIs(t, err, ErrNotFound)

	snap := pl.Snapshot()
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "Two Sum", snap.Records[0].Title)
}

func TestRemove_ThenRemoveAgain(t *testing.T) {
	pl, slot := openEmpty(t)
	rec, err := pl.Add(sampleInput())
	require.NoError(t, err)

	require.NoError(t, pl.Remove(rec.ID))
	assert.Empty(t, pl.Snapshot().Records)

	// Second remove reports not-found and changes nothing.
	err = pl.Remove(rec.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, pl.Snapshot().Records)

	// The slot reflects the empty record list.
	var env envelope
	require.NoError(t, json.Unmarshal(slot.Data, &env))
	assert.Empty(t, env.Records)
}

func TestToggleReview_TwiceRestoresOriginal(t *testing.T) {
	pl, _ := openEmpty(t)
	rec, err := pl.Add(sampleInput())
	require.NoError(t, err)
	require.False(t, rec.MarkedForReview)

	on, err := pl.ToggleReview(rec.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := pl.ToggleReview(rec.ID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = pl.ToggleReview("no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateGoalSettings_ShallowMerge(t *testing.T) {
	pl, _ := openEmpty(t)

	weekly := domain.PeriodWeekly
	require.NoError(t, pl.UpdateGoalSettings(GoalSettingsPatch{Period: &weekly}))

	snap := pl.Snapshot()
	assert.Equal(t, domain.PeriodWeekly, snap.GoalSettings.Period)
	// Untouched fields survive the merge.
	assert.Len(t, snap.GoalSettings.Goals, len(domain.GoalCategories))

	lang := "go"
	require.NoError(t, pl.UpdateGoalSettings(GoalSettingsPatch{DefaultCodingLanguage: &lang}))
	snap = pl.Snapshot()
	assert.Equal(t, domain.PeriodWeekly, snap.GoalSettings.Period)
	assert.Equal(t, "go", snap.GoalSettings.DefaultCodingLanguage)
}

func TestUpdateGoalSettings_GoalsPassThrough(t *testing.T) {
	pl, _ := openEmpty(t)

	// Unknown category ids are preserved as-is.
	goals := map[string]domain.Goal{
		"dp_greedy":    {CategoryID: "dp_greedy", Target: 5},
		"not-a-cat-id": {CategoryID: "not-a-cat-id", Target: 1},
	}
	require.NoError(t, pl.UpdateGoalSettings(GoalSettingsPatch{Goals: goals}))

	snap := pl.Snapshot()
	assert.Equal(t, 5, snap.GoalSettings.Goals["dp_greedy"].Target)
	assert.Equal(t, 1, snap.GoalSettings.Goals["not-a-cat-id"].Target)
}

func TestUpdateGoalSettings_RejectsBadPeriod(t *testing.T) {
	pl, _ := openEmpty(t)
	bad := domain.GoalPeriod("monthly")
	require.Error(t, pl.UpdateGoalSettings(GoalSettingsPatch{Period: &bad}))
	assert.Equal(t, domain.PeriodDaily, pl.Snapshot().GoalSettings.Period)
}

func TestPersist_WriteFailureKeepsMemoryState(t *testing.T) {
	slot := &testutil.MemorySlot{WriteErr: errors.New("disk full")}
	pl := Open(slot, quietLogger())

	rec, err := pl.Add(sampleInput())
	require.NoError(t, err, "persistence failure must not surface")

	snap := pl.Snapshot()
	require.Len(t, snap.Records, 1)
	assert.Equal(t, rec.ID, snap.Records[0].ID)
}

func TestPersist_WritesAfterEveryMutation(t *testing.T) {
	pl, slot := openEmpty(t)

	rec, err := pl.Add(sampleInput())
	require.NoError(t, err)
	require.NoError(t, pl.Update(rec))
	_, err = pl.ToggleReview(rec.ID)
	require.NoError(t, err)
	require.NoError(t, pl.Remove(rec.ID))

	assert.Equal(t, 4, slot.Writes)
}

func TestSnapshot_IsIsolatedCopy(t *testing.T) {
	pl, _ := openEmpty(t)
	_, err := pl.Add(sampleInput())
	require.NoError(t, err)

	snap := pl.Snapshot()
	snap.Records[0].Title = "mutated copy"
	assert.Equal(t, "Two Sum", pl.Snapshot().Records[0].Title)
}

func TestAddThenRemove_SlotReflectsEmptyList(t *testing.T) {
	pl, slot := openEmpty(t)
	rec, err := pl.Add(domain.SolvedProblem{
		Title: "Two Sum", Category: domain.CategoryArray,
		Difficulty: domain.DifficultyEasy, ReferenceURL: "https://x",
		DateSolved: "2024-01-01",
	})
	require.NoError(t, err)
	require.NoError(t, pl.Remove(rec.ID))

	assert.Empty(t, pl.Snapshot().Records)
	var env envelope
	require.NoError(t, json.Unmarshal(slot.Data, &env))
	assert.Empty(t, env.Records)
	assert.Equal(t, SchemaVersion, env.SchemaVersion)
}
