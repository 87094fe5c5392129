package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used everywhere a date is
// serialized: no time component, no timezone.
const DateLayout = "2006-01-02"

// SolvedProblem is one logged practice entry.
type SolvedProblem struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Category        Category   `json:"category"`
	Difficulty      Difficulty `json:"difficulty"`
	ReferenceURL    string     `json:"referenceUrl"`
	DateSolved      string     `json:"dateSolved"`
	MarkedForReview bool       `json:"markedForReview"`
}

// Validate checks the fields a caller supplies when creating or editing a
// record. The ID is not checked here: it is assigned by the ledger on add
// and matched by the ledger on update.
func (p *SolvedProblem) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		return err
	}
	if _, err := ParseDate(p.DateSolved); err != nil {
		return fmt.Errorf("dateSolved: %w", err)
	}
	return nil
}

// SolvedOn returns the record's solve date as a time.Time at midnight local.
// Records held by a ledger have already passed Validate, so a parse failure
// here means the struct was built by hand; the zero time is returned.
func (p *SolvedProblem) SolvedOn() time.Time {
	t, err := ParseDate(p.DateSolved)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
