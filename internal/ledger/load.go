package ledger

import (
	"encoding/json"

	"github.com/grindcli/grind/internal/domain"
)

// SchemaVersion is written into every persisted document. Documents
// without the field (version 0) predate versioning and are repaired by
// shape backfill on load.
const SchemaVersion = 1

// envelope is the persisted form of the ledger. GoalSettings is a pointer
// so a missing object can be told apart from an empty one.
type envelope struct {
	SchemaVersion int                    `json:"schemaVersion"`
	Records       []domain.SolvedProblem `json:"records"`
	GoalSettings  *domain.GoalSettings   `json:"goalSettings"`
}

func marshalLedger(l domain.Ledger) ([]byte, error) {
	gs := l.GoalSettings
	return json.MarshalIndent(envelope{
		SchemaVersion: SchemaVersion,
		Records:       l.Records,
		GoalSettings:  &gs,
	}, "", "  ")
}

// load reads and repairs the stored ledger. Every failure path degrades to
// the default ledger; load never fails.
func (pl *PracticeLedger) load() domain.Ledger {
	data, ok, err := pl.slot.Read()
	if err != nil {
		pl.logger.Printf("ledger: reading stored state: %v (starting from defaults)", err)
		return domain.DefaultLedger()
	}
	if !ok {
		return domain.DefaultLedger()
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		pl.logger.Printf("ledger: stored state is malformed: %v (starting from defaults)", err)
		return domain.DefaultLedger()
	}

	led := domain.Ledger{Records: env.Records}
	if env.Records == nil {
		led.Records = []domain.SolvedProblem{}
	}
	if env.GoalSettings != nil {
		led.GoalSettings = *env.GoalSettings
	}
	backfill(&led, env.GoalSettings != nil)
	return led
}

// backfill repairs schema drift in a loaded ledger. The repair is additive:
// unknown goal entries and unrecognized record fields already decoded are
// kept, and running backfill on a canonical ledger changes nothing.
func backfill(led *domain.Ledger, hasGoalSettings bool) {
	switch {
	case !hasGoalSettings, len(led.GoalSettings.Goals) == 0:
		// Nothing usable stored; derive everything from the catalog.
		lang := led.GoalSettings.DefaultCodingLanguage
		led.GoalSettings = domain.DefaultGoalSettings()
		led.GoalSettings.DefaultCodingLanguage = lang
	default:
		for _, gc := range domain.GoalCategories {
			if _, ok := led.GoalSettings.Goals[gc.ID]; !ok {
				led.GoalSettings.Goals[gc.ID] = domain.Goal{CategoryID: gc.ID, Target: gc.DefaultTarget}
			}
		}
	}

	if _, err := domain.ParseGoalPeriod(string(led.GoalSettings.Period)); err != nil {
		led.GoalSettings.Period = domain.PeriodDaily
	}

	// MarkedForReview decodes to false when the field is absent from an
	// older document, which is exactly the backfill value; no per-record
	// pass is needed for it.
}
