package domain

// Ledger is the aggregate the tracker persists as a single document:
// every solved-problem record in insertion order plus goal configuration.
type Ledger struct {
	Records      []SolvedProblem `json:"records"`
	GoalSettings GoalSettings    `json:"goalSettings"`
}

// DefaultLedger builds the ledger used when nothing has been stored yet.
func DefaultLedger() Ledger {
	return Ledger{
		Records:      []SolvedProblem{},
		GoalSettings: DefaultGoalSettings(),
	}
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing internal state to mutation.
func (l Ledger) Clone() Ledger {
	out := Ledger{
		Records:      make([]SolvedProblem, len(l.Records)),
		GoalSettings: l.GoalSettings.Clone(),
	}
	copy(out.Records, l.Records)
	return out
}

// FindRecord returns the index of the record with the given id, or -1.
func (l Ledger) FindRecord(id string) int {
	for i, r := range l.Records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
