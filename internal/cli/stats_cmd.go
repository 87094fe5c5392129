package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/stats"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must be non-negative")
			}
			summary := stats.Compute(app.Ledger.Snapshot(), time.Now(), days)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(summary))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Days of per-day history to show (0 hides the series)")
	return cmd
}
