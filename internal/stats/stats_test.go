package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindcli/grind/internal/domain"
)

func rec(cat domain.Category, diff domain.Difficulty, date string, review bool) domain.SolvedProblem {
	return domain.SolvedProblem{
		ID: "id-" + date + string(cat), Title: "p", Category: cat,
		Difficulty: diff, DateSolved: date, MarkedForReview: review,
	}
}

func TestCompute_Distributions(t *testing.T) {
	led := domain.Ledger{Records: []domain.SolvedProblem{
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-12", false),
		rec(domain.CategoryArray, domain.DifficultyMedium, "2024-03-13", true),
		rec(domain.CategoryDP, domain.DifficultyHard, "2024-03-14", true),
	}}
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.Local)

	s := Compute(led, now, 0)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ByCategory[domain.CategoryArray])
	assert.Equal(t, 1, s.ByCategory[domain.CategoryDP])
	assert.Equal(t, 1, s.ByDifficulty[domain.DifficultyEasy])
	assert.Equal(t, 1, s.ByDifficulty[domain.DifficultyHard])
	assert.Equal(t, 2, s.MarkedForReview)
}

func TestCompute_SolvedPerDaySeries(t *testing.T) {
	led := domain.Ledger{Records: []domain.SolvedProblem{
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-13", false),
		rec(domain.CategoryTree, domain.DifficultyEasy, "2024-03-13", false),
		rec(domain.CategoryDP, domain.DifficultyEasy, "2024-03-14", false),
	}}
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.Local)

	s := Compute(led, now, 3)
	require.Len(t, s.SolvedPerDay, 3)
	assert.Equal(t, DayCount{Date: "2024-03-12", Count: 0}, s.SolvedPerDay[0])
	assert.Equal(t, DayCount{Date: "2024-03-13", Count: 2}, s.SolvedPerDay[1])
	assert.Equal(t, DayCount{Date: "2024-03-14", Count: 1}, s.SolvedPerDay[2])
}

func TestCompute_StreakCountsBackFromToday(t *testing.T) {
	led := domain.Ledger{Records: []domain.SolvedProblem{
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-12", false),
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-13", false),
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-14", false),
	}}
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 3, Compute(led, now, 0).CurrentStreak)
}

func TestCompute_StreakSurvivesQuietToday(t *testing.T) {
	// No solve yet today: yesterday's run still counts.
	led := domain.Ledger{Records: []domain.SolvedProblem{
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-12", false),
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-13", false),
	}}
	now := time.Date(2024, 3, 14, 8, 0, 0, 0, time.Local)
	assert.Equal(t, 2, Compute(led, now, 0).CurrentStreak)
}

func TestCompute_StreakBrokenByGap(t *testing.T) {
	led := domain.Ledger{Records: []domain.SolvedProblem{
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-10", false),
		rec(domain.CategoryArray, domain.DifficultyEasy, "2024-03-14", false),
	}}
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 1, Compute(led, now, 0).CurrentStreak)
}

func TestCompute_EmptyLedger(t *testing.T) {
	s := Compute(domain.DefaultLedger(), time.Now(), 7)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Len(t, s.SolvedPerDay, 7)
}
