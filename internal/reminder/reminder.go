// Package reminder fires the daily goal-reminder webhook. It is designed
// to be invoked repeatedly (e.g. from cron): the notifier itself decides
// whether this invocation should send anything.
package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/ledger"
	"github.com/grindcli/grind/internal/storage"
)

// Config holds reminder settings.
type Config struct {
	WebhookURL string
	User       string
	// AfterHour/AfterMinute is the local time of day after which the
	// reminder may fire.
	AfterHour   int
	AfterMinute int
}

// UnmetGoal is one goal category still short of its target.
type UnmetGoal struct {
	Category  string `json:"category"`
	Target    int    `json:"target"`
	Solved    int    `json:"solved"`
	Remaining int    `json:"remaining"`
}

// payload is the JSON body POSTed to the webhook.
type payload struct {
	User       string      `json:"user"`
	Date       string      `json:"date"`
	UnmetGoals []UnmetGoal `json:"unmet_goals"`
}

// firedState is what the notifier persists between invocations.
type firedState struct {
	LastFired string `json:"lastFired"`
}

// Outcome says what a Run invocation did.
type Outcome string

const (
	OutcomeFired        Outcome = "fired"
	OutcomeTooEarly     Outcome = "too_early"
	OutcomeAlreadyFired Outcome = "already_fired"
	OutcomeGoalsMet     Outcome = "goals_met"
)

// Notifier owns the once-per-day firing discipline. The last-fired date
// lives in its own storage slot, separate from the ledger document.
type Notifier struct {
	cfg  Config
	slot storage.Slot
	http *http.Client
}

// NewNotifier creates a Notifier persisting its state in slot.
func NewNotifier(cfg Config, slot storage.Slot) *Notifier {
	return &Notifier{
		cfg:  cfg,
		slot: slot,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Run checks whether the reminder should fire at now and, if so, POSTs the
// unmet goals. force skips the time-of-day and once-per-day guards but
// still sends nothing when every goal is met.
func (n *Notifier) Run(ctx context.Context, now time.Time, progress []ledger.GoalProgress, force bool) (Outcome, error) {
	today := now.Format(domain.DateLayout)

	if !force {
		cutoff := time.Date(now.Year(), now.Month(), now.Day(),
			n.cfg.AfterHour, n.cfg.AfterMinute, 0, 0, now.Location())
		if now.Before(cutoff) {
			return OutcomeTooEarly, nil
		}
		if n.lastFired() == today {
			return OutcomeAlreadyFired, nil
		}
	}

	unmet := CollectUnmet(progress)
	if len(unmet) == 0 {
		return OutcomeGoalsMet, nil
	}

	if err := n.post(ctx, payload{User: n.cfg.User, Date: today, UnmetGoals: unmet}); err != nil {
		return "", err
	}

	// Record the send; a failure here only risks a duplicate reminder
	// tomorrow, so it is not worth failing the run for.
	data, err := json.Marshal(firedState{LastFired: today})
	if err == nil {
		_ = n.slot.Write(data)
	}
	return OutcomeFired, nil
}

// CollectUnmet filters progress down to the categories short of target.
func CollectUnmet(progress []ledger.GoalProgress) []UnmetGoal {
	var unmet []UnmetGoal
	for _, p := range progress {
		if p.Remaining > 0 {
			unmet = append(unmet, UnmetGoal{
				Category:  p.CategoryID,
				Target:    p.Target,
				Solved:    p.Solved,
				Remaining: p.Remaining,
			})
		}
	}
	return unmet
}

func (n *Notifier) lastFired() string {
	data, ok, err := n.slot.Read()
	if err != nil || !ok {
		return ""
	}
	var st firedState
	if err := json.Unmarshal(data, &st); err != nil {
		return ""
	}
	return st.LastFired
}

func (n *Notifier) post(ctx context.Context, p payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling reminder payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating reminder request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting reminder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("reminder webhook returned status %d", resp.StatusCode)
	}
	return nil
}
