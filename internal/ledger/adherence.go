package ledger

import (
	"time"

	"github.com/grindcli/grind/internal/domain"
)

// GoalProgress reports how one goal category stands within the current
// period window.
type GoalProgress struct {
	CategoryID string
	Label      string
	Target     int
	Solved     int
	Remaining  int
}

// Adherence computes per-category progress for the period containing now:
// the current day when the period is daily, the current Monday–Sunday week
// when it is weekly. Read-only; results follow the catalog order.
func (pl *PracticeLedger) Adherence(now time.Time) []GoalProgress {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	start, end := PeriodBounds(pl.state.GoalSettings.Period, now)

	out := make([]GoalProgress, 0, len(domain.GoalCategories))
	for _, gc := range domain.GoalCategories {
		covered := make(map[domain.Category]bool, len(gc.Covers))
		for _, c := range gc.Covers {
			covered[c] = true
		}

		solved := 0
		for _, r := range pl.state.Records {
			if !covered[r.Category] {
				continue
			}
			d := r.SolvedOn()
			if !d.Before(start) && d.Before(end) {
				solved++
			}
		}

		target := pl.state.GoalSettings.Goals[gc.ID].Target
		remaining := target - solved
		if remaining < 0 {
			remaining = 0
		}
		out = append(out, GoalProgress{
			CategoryID: gc.ID,
			Label:      gc.Label,
			Target:     target,
			Solved:     solved,
			Remaining:  remaining,
		})
	}
	return out
}

// PeriodBounds returns the half-open [start, end) window of the period
// containing now, at local midnight boundaries. Weeks run Monday–Sunday.
func PeriodBounds(period domain.GoalPeriod, now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if period != domain.PeriodWeekly {
		return day, day.AddDate(0, 0, 1)
	}

	// time.Weekday puts Sunday at 0; shift so Monday starts the week.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}
