package formatter

import (
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/ledger"
)

// FormatAdherence renders the goal-adherence view for the current period.
func FormatAdherence(period domain.GoalPeriod, progress []ledger.GoalProgress) string {
	var b strings.Builder

	title := "Today's goals"
	if period == domain.PeriodWeekly {
		title = "This week's goals"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")

	headers := []string{"CATEGORY", "TARGET", "SOLVED", "STATUS"}
	rows := make([][]string, 0, len(progress))
	met := 0
	for _, p := range progress {
		if p.Remaining == 0 {
			met++
		}
		rows = append(rows, []string{
			p.Label,
			fmt.Sprintf("%d", p.Target),
			fmt.Sprintf("%d", p.Solved),
			GoalIndicator(p.Remaining),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	fmt.Fprintf(&b, "\n%s\n", summaryLine(met, len(progress)))
	return b.String()
}

func summaryLine(met, total int) string {
	switch {
	case met == total:
		return StyleGreen.Render("All goals met. Nice work!")
	case met == 0:
		return StyleYellow.Render("No goals met yet.")
	default:
		return StyleFg.Render(fmt.Sprintf("%d of %d goals met.", met, total))
	}
}
