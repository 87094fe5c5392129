package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGoalSettings(t *testing.T) {
	s := DefaultGoalSettings()
	assert.Equal(t, PeriodDaily, s.Period)
	require.Len(t, s.Goals, len(GoalCategories))
	for _, gc := range GoalCategories {
		g, ok := s.Goals[gc.ID]
		require.True(t, ok, "missing goal for %s", gc.ID)
		assert.Equal(t, gc.DefaultTarget, g.Target)
		assert.Equal(t, gc.ID, g.CategoryID)
	}
}

func TestGoalCatalog_CoversEveryCategory(t *testing.T) {
	covered := make(map[Category]bool)
	for _, gc := range GoalCategories {
		for _, c := range gc.Covers {
			assert.False(t, covered[c], "category %s covered twice", c)
			covered[c] = true
		}
	}
	for _, c := range AllCategories {
		assert.True(t, covered[c], "category %s not covered by any goal category", c)
	}
}

func TestGoalSettingsClone_Independent(t *testing.T) {
	s := DefaultGoalSettings()
	c := s.Clone()
	c.Goals["dp_greedy"] = Goal{CategoryID: "dp_greedy", Target: 99}
	assert.NotEqual(t, 99, s.Goals["dp_greedy"].Target)
}

func TestLedgerClone_Independent(t *testing.T) {
	l := DefaultLedger()
	l.Records = append(l.Records, SolvedProblem{ID: "a", Title: "Two Sum"})
	c := l.Clone()
	c.Records[0].Title = "changed"
	assert.Equal(t, "Two Sum", l.Records[0].Title)
}

func TestFindRecord(t *testing.T) {
	l := Ledger{Records: []SolvedProblem{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, l.FindRecord("b"))
	assert.Equal(t, -1, l.FindRecord("c"))
}
