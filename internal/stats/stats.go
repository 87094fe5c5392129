// Package stats computes derived analytics over a ledger snapshot. All
// functions are pure: they read the snapshot and return values, nothing
// is cached or persisted.
package stats

import (
	"time"

	"github.com/grindcli/grind/internal/domain"
)

// Summary aggregates the numbers shown by the stats view.
type Summary struct {
	Total           int
	ByCategory      map[domain.Category]int
	ByDifficulty    map[domain.Difficulty]int
	MarkedForReview int
	CurrentStreak   int
	SolvedPerDay    []DayCount
}

// DayCount is the number of records solved on one calendar day.
type DayCount struct {
	Date  string
	Count int
}

// Compute builds a Summary for the ledger as of now. The solved-per-day
// series covers the last days calendar days ending today.
func Compute(led domain.Ledger, now time.Time, days int) Summary {
	s := Summary{
		Total:        len(led.Records),
		ByCategory:   make(map[domain.Category]int),
		ByDifficulty: make(map[domain.Difficulty]int),
	}

	perDay := make(map[string]int)
	for _, r := range led.Records {
		s.ByCategory[r.Category]++
		s.ByDifficulty[r.Difficulty]++
		if r.MarkedForReview {
			s.MarkedForReview++
		}
		perDay[r.DateSolved]++
	}

	if days > 0 {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		s.SolvedPerDay = make([]DayCount, 0, days)
		for i := days - 1; i >= 0; i-- {
			d := today.AddDate(0, 0, -i).Format(domain.DateLayout)
			s.SolvedPerDay = append(s.SolvedPerDay, DayCount{Date: d, Count: perDay[d]})
		}
	}

	s.CurrentStreak = streak(perDay, now)
	return s
}

// streak counts consecutive days with at least one solve, walking back
// from today. A day without solves today still counts yesterday's run, so
// the streak is not broken before the day is over.
func streak(perDay map[string]int, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	day := today
	if perDay[day.Format(domain.DateLayout)] == 0 {
		day = day.AddDate(0, 0, -1)
	}

	n := 0
	for perDay[day.Format(domain.DateLayout)] > 0 {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}
