package formatter

import (
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/domain"
)

// FormatGoalSettings renders the goal configuration view.
func FormatGoalSettings(gs domain.GoalSettings) string {
	var b strings.Builder
	b.WriteString(Header("Goal settings"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Bold("Period:"), string(gs.Period))
	if gs.DefaultCodingLanguage != "" {
		fmt.Fprintf(&b, "%s %s\n", Bold("Language:"), gs.DefaultCodingLanguage)
	}
	b.WriteString("\n")

	headers := []string{"GOAL", "TARGET", "COVERS"}
	rows := make([][]string, 0, len(domain.GoalCategories))
	for _, gc := range domain.GoalCategories {
		covers := make([]string, 0, len(gc.Covers))
		for _, c := range gc.Covers {
			covers = append(covers, string(c))
		}
		target := gc.DefaultTarget
		if g, ok := gs.Goals[gc.ID]; ok {
			target = g.Target
		}
		rows = append(rows, []string{
			gc.Label,
			fmt.Sprintf("%d", target),
			Dim(strings.Join(covers, ", ")),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
