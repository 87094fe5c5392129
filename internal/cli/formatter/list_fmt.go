package formatter

import (
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/domain"
)

// FormatRecordList renders the solved-problem table.
func FormatRecordList(records []domain.SolvedProblem) string {
	if len(records) == 0 {
		return Dim("No problems logged yet. Try `grind add`.") + "\n"
	}

	headers := []string{"ID", "TITLE", "CATEGORY", "DIFF", "SOLVED", "R"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(ShortID(r.ID)),
			r.Title,
			string(r.Category),
			Difficulty(r.Difficulty),
			r.DateSolved,
			ReviewFlag(r.MarkedForReview),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d problem(s)", len(records))))
	return b.String()
}

// FormatRecord renders a single record in detail.
func FormatRecord(r domain.SolvedProblem) string {
	var b strings.Builder
	b.WriteString(Header(r.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", Bold("ID:"), r.ID)
	fmt.Fprintf(&b, "%s  %s\n", Bold("Category:"), string(r.Category))
	fmt.Fprintf(&b, "%s  %s\n", Bold("Difficulty:"), Difficulty(r.Difficulty))
	fmt.Fprintf(&b, "%s  %s\n", Bold("Solved:"), r.DateSolved)
	if r.ReferenceURL != "" {
		fmt.Fprintf(&b, "%s  %s\n", Bold("URL:"), StyleBlue.Render(r.ReferenceURL))
	}
	if r.MarkedForReview {
		fmt.Fprintf(&b, "%s marked for review\n", StylePurple.Render("★"))
	}
	return b.String()
}

// ShortID abbreviates a uuid for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
