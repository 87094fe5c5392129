package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/domain"
)

func newEditCmd(app *App) *cobra.Command {
	var (
		title, category, difficulty, url, date string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a logged problem",
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

			if cmd.Flags().NFlag() == 0 {
				if !app.interactive() {
					return fmt.Errorf("nothing to change: pass at least one flag")
				}
				formDate := rec.DateSolved
				if err := recordForm(&rec, &formDate).Run(); err != nil {
					return err
				}
				rec.DateSolved = formDate
			} else {
				if title != "" {
					rec.Title = title
				}
				if category != "" {
					rec.Category = domain.Category(category)
				}
				if difficulty != "" {
					rec.Difficulty = domain.Difficulty(difficulty)
				}
				if cmd.Flags().Changed("url") {
					rec.ReferenceURL = url
				}
				if date != "" {
					rec.DateSolved = date
				}
			}

			if err := app.Ledger.Update(rec); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s [%s]\n",
				formatter.Bold(rec.Title), formatter.ShortID(rec.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	addEnumFlag(cmd.Flags(), &category, "category", "New category", categoryNames()...)
	addEnumFlag(cmd.Flags(), &difficulty, "difficulty", "New difficulty", difficultyNames()...)
	cmd.Flags().StringVar(&url, "url", "", "New reference URL (pass empty to clear)")
	cmd.Flags().StringVar(&date, "date", "", "New solve date (YYYY-MM-DD)")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a logged problem",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRecordID(app, args[0])
			if err != nil {
				return err
			}
			rec, err := recordByID(app, id)
			if err != nil {
				return err
			}
			if err := app.Ledger.Remove(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s [%s]\n",
				formatter.Bold(rec.Title), formatter.ShortID(id))
			return nil
		},
	}
}

func newReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review <id>",
		Short: "Toggle a problem's review flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRecordID(app, args[0])
			if err != nil {
				return err
			}
			marked, err := app.Ledger.ToggleReview(id)
			if err != nil {
				return err
			}
			if marked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked for review [%s]\n",
					formatter.ReviewFlag(true), formatter.ShortID(id))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Review flag cleared [%s]\n", formatter.ShortID(id))
			}
			return nil
		},
	}
}
