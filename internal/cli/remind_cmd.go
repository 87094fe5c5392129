package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/reminder"
)

func newRemindCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send the daily unmet-goals webhook if it is due",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Notifier == nil {
				return fmt.Errorf("reminders are not configured: set GRIND_REMIND_URL")
			}

			now := time.Now()
			progress := app.Ledger.Adherence(now)

			outcome, err := app.Notifier.Run(context.Background(), now, progress, force)
			if err != nil {
				return err
			}

			switch outcome {
			case reminder.OutcomeFired:
				fmt.Fprintln(cmd.OutOrStdout(), "Reminder sent.")
			case reminder.OutcomeTooEarly:
				fmt.Fprintln(cmd.OutOrStdout(), "Too early: the reminder window has not opened yet.")
			case reminder.OutcomeAlreadyFired:
				fmt.Fprintln(cmd.OutOrStdout(), "Already sent today.")
			case reminder.OutcomeGoalsMet:
				fmt.Fprintln(cmd.OutOrStdout(), "All goals met. Nothing to nag about.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Send even if it is early or already sent today")
	return cmd
}
