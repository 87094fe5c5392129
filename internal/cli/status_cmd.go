package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show goal progress for the current period",
		RunE: func(cmd *cobra.Command, args []string) error {
			led := app.Ledger.Snapshot()
			progress := app.Ledger.Adherence(time.Now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdherence(led.GoalSettings.Period, progress))
			return nil
		},
	}
}
