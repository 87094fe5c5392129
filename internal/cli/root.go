// Package cli wires the grind commands. Commands hold no state of their
// own; everything goes through the App container so tests can swap in
// fakes.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/intelligence"
	"github.com/grindcli/grind/internal/ledger"
	"github.com/grindcli/grind/internal/reminder"
)

// App holds the collaborators CLI commands run against. Recommend, Chat
// and Notifier may be nil when their feature is disabled; the commands
// degrade or refuse accordingly.
type App struct {
	Ledger    *ledger.PracticeLedger
	Recommend intelligence.RecommendService
	Chat      intelligence.ChatService
	Notifier  *reminder.Notifier

	// IsInteractive reports whether stdin is a terminal. Interactive-only
	// surfaces (the add form, the chat TUI) check it before launching.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "grind" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "grind",
		Short:         "Track DSA practice and keep your goals honest",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newReviewCmd(app),
		newGoalsCmd(app),
		newStatusCmd(app),
		newStatsCmd(app),
		newRecommendCmd(app),
		newChatCmd(app),
		newRemindCmd(app),
	)

	return root
}
