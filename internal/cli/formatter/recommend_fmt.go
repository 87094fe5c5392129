package formatter

import (
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/intelligence"
)

// FormatRecommendations renders the recommendation view.
func FormatRecommendations(resp *intelligence.RecommendResponse) string {
	var b strings.Builder
	b.WriteString(Header("What to practice next"))
	b.WriteString("\n")

	if len(resp.Recommendations) == 0 {
		b.WriteString(Dim("Nothing to suggest right now.") + "\n")
		return b.String()
	}

	for i, r := range resp.Recommendations {
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			Bold(r.ProblemName),
			Difficulty(r.Difficulty),
			Dim("["+string(r.Category)+"]"))
		if r.Reason != "" {
			fmt.Fprintf(&b, "   %s\n", r.Reason)
		}
		if r.URL != "" {
			fmt.Fprintf(&b, "   %s\n", StyleBlue.Render(r.URL))
		}
		b.WriteString("\n")
	}

	if resp.Source == "deterministic" {
		b.WriteString(Dim("(offline suggestions; set GRIND_LLM_ENABLED=true for smarter picks)") + "\n")
	}
	return b.String()
}
