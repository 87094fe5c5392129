package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		title, category, difficulty, url, date string
		review                                 bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a solved problem",
		Long: "Log a solved problem. With no flags and an interactive terminal,\n" +
			"opens an entry form; otherwise --title, --category and --difficulty\n" +
			"are required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := domain.SolvedProblem{
				Title:           title,
				Category:        domain.Category(category),
				Difficulty:      domain.Difficulty(difficulty),
				ReferenceURL:    url,
				DateSolved:      date,
				MarkedForReview: review,
			}

			if title == "" && app.interactive() {
				var formDate string
				if err := recordForm(&rec, &formDate).Run(); err != nil {
					return err
				}
				rec.DateSolved = formDate
			}
			if rec.DateSolved == "" {
				rec.DateSolved = time.Now().Format(domain.DateLayout)
			}

			saved, err := app.Ledger.Add(rec)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s [%s]\n",
				formatter.Bold(saved.Title), formatter.ShortID(saved.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Problem title")
	addEnumFlag(cmd.Flags(), &category, "category", "Problem category", categoryNames()...)
	addEnumFlag(cmd.Flags(), &difficulty, "difficulty", "Problem difficulty", difficultyNames()...)
	cmd.Flags().StringVar(&url, "url", "", "Reference URL")
	cmd.Flags().StringVar(&date, "date", "", "Date solved (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&review, "review", false, "Mark the problem for review")

	return cmd
}
