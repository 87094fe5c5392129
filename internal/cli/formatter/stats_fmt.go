package formatter

import (
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/stats"
)

// FormatStats renders the analytics summary.
func FormatStats(s stats.Summary) string {
	var b strings.Builder

	b.WriteString(Header("Practice stats"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d    %s %d    %s %d\n\n",
		Bold("Total:"), s.Total,
		Bold("Streak:"), s.CurrentStreak,
		Bold("For review:"), s.MarkedForReview)

	b.WriteString(Bold("By difficulty"))
	b.WriteString("\n")
	for _, d := range domain.AllDifficulties {
		fmt.Fprintf(&b, "  %s %s\n", pad(Difficulty(d), 8), bar(s.ByDifficulty[d], s.Total))
	}
	b.WriteString("\n")

	b.WriteString(Bold("By category"))
	b.WriteString("\n")
	for _, c := range domain.AllCategories {
		if s.ByCategory[c] == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", pad(string(c), 17), bar(s.ByCategory[c], s.Total))
	}

	if len(s.SolvedPerDay) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold(fmt.Sprintf("Last %d days", len(s.SolvedPerDay))))
		b.WriteString("\n")
		for _, dc := range s.SolvedPerDay {
			fmt.Fprintf(&b, "  %s %s\n", Dim(dc.Date), bar(dc.Count, maxDay(s.SolvedPerDay)))
		}
	}

	return b.String()
}

// bar renders an n-of-total block bar with the count appended.
func bar(n, total int) string {
	if total <= 0 {
		total = 1
	}
	const width = 20
	filled := n * width / total
	if n > 0 && filled == 0 {
		filled = 1
	}
	return fmt.Sprintf("%s%s %d",
		StyleBlue.Render(strings.Repeat("█", filled)),
		Dim(strings.Repeat("░", width-filled)),
		n)
}

func maxDay(days []stats.DayCount) int {
	m := 1
	for _, d := range days {
		if d.Count > m {
			m = d.Count
		}
	}
	return m
}

func pad(s string, w int) string {
	// Visible width, not byte length: difficulty tags carry ANSI codes.
	for visibleWidth(s) < w {
		s += " "
	}
	return s
}
