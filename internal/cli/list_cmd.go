package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/domain"
)

func newListCmd(app *App) *cobra.Command {
	var (
		category, difficulty string
		reviewOnly           bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			led := app.Ledger.Snapshot()

			records := make([]domain.SolvedProblem, 0, len(led.Records))
			for _, r := range led.Records {
				if category != "" && string(r.Category) != category {
					continue
				}
				if difficulty != "" && string(r.Difficulty) != difficulty {
					continue
				}
				if reviewOnly && !r.MarkedForReview {
					continue
				}
				records = append(records, r)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordList(records))
			return nil
		},
	}

	addEnumFlag(cmd.Flags(), &category, "category", "Only show this category", categoryNames()...)
	addEnumFlag(cmd.Flags(), &difficulty, "difficulty", "Only show this difficulty", difficultyNames()...)
	cmd.Flags().BoolVar(&reviewOnly, "review", false, "Only show problems marked for review")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one problem in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRecordID(app, args[0])
			if err != nil {
				return err
			}
			rec, err := recordByID(app, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecord(rec))
			return nil
		},
	}
}
