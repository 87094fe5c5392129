package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/intelligence"
)

func newRecommendCmd(app *App) *cobra.Command {
	var focus []string
	var sheet string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest problems to practice next",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Recommend == nil {
				return fmt.Errorf("recommendations are not available")
			}

			focusCategories := make([]domain.Category, 0, len(focus))
			for _, f := range focus {
				c, err := domain.ParseCategory(f)
				if err != nil {
					return err
				}
				focusCategories = append(focusCategories, c)
			}

			led := app.Ledger.Snapshot()
			solved := make([]intelligence.SolvedSummary, 0, len(led.Records))
			for _, r := range led.Records {
				solved = append(solved, intelligence.SolvedSummary{
					Category:   r.Category,
					Difficulty: r.Difficulty,
					URL:        r.ReferenceURL,
				})
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Thinking about what to grind next...")
			}

			resp, err := app.Recommend.Recommend(context.Background(), intelligence.RecommendRequest{
				Solved:          solved,
				FocusCategories: focusCategories,
				SourceSheetURL:  sheet,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(resp))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Categories to focus on (comma-separated)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Problem-sheet URL to draw suggestions from")

	return cmd
}
