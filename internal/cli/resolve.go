package cli

import (
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/domain"
)

// resolveRecordID maps user input to a full record id. Accepts the full
// uuid or any unambiguous prefix (the list view shows the first 8 chars).
func resolveRecordID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("record ID is required")
	}

	led := app.Ledger.Snapshot()

	// 1. Exact match
	for _, r := range led.Records {
		if r.ID == input {
			return r.ID, nil
		}
	}

	// 2. Prefix match (case-insensitive; uuids print lowercase)
	prefix := strings.ToLower(input)
	var matches []string
	for _, r := range led.Records {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("record not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("record ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// recordByID returns the record with the given (already resolved) id.
func recordByID(app *App, id string) (domain.SolvedProblem, error) {
	led := app.Ledger.Snapshot()
	if i := led.FindRecord(id); i >= 0 {
		return led.Records[i], nil
	}
	return domain.SolvedProblem{}, fmt.Errorf("record not found: %q", id)
}
