package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/ledger"
)

func newGoalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or change goal settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			led := app.Ledger.Snapshot()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalSettings(led.GoalSettings))
			return nil
		},
	}

	cmd.AddCommand(
		newGoalsSetCmd(app),
		newGoalsPeriodCmd(app),
		newGoalsLanguageCmd(app),
	)

	return cmd
}

func newGoalsSetCmd(app *App) *cobra.Command {
	var goalID string
	var target int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the target for one goal category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := domain.GoalCategoryByID(goalID); !ok {
				return fmt.Errorf("unknown goal category %q", goalID)
			}
			if target < 0 {
				return fmt.Errorf("target must be non-negative")
			}

			led := app.Ledger.Snapshot()
			goals := led.GoalSettings.Goals
			goals[goalID] = domain.Goal{CategoryID: goalID, Target: target}

			if err := app.Ledger.UpdateGoalSettings(ledger.GoalSettingsPatch{Goals: goals}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %s set to %d per period\n", goalID, target)
			return nil
		},
	}

	goalIDs := make([]string, 0, len(domain.GoalCategories))
	for _, gc := range domain.GoalCategories {
		goalIDs = append(goalIDs, gc.ID)
	}
	addEnumFlag(cmd.Flags(), &goalID, "goal", "Goal category id", goalIDs...)
	cmd.Flags().IntVar(&target, "target", 0, "Problems per period")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalsPeriodCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "period <daily|weekly>",
		Short:     "Switch between daily and weekly goals",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.PeriodDaily), string(domain.PeriodWeekly)},
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := domain.ParseGoalPeriod(args[0])
			if err != nil {
				return err
			}
			if err := app.Ledger.UpdateGoalSettings(ledger.GoalSettingsPatch{Period: &period}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal period set to %s\n", period)
			return nil
		},
	}
}

func newGoalsLanguageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "language <lang>",
		Short: "Set the preferred coding language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := args[0]
			if err := app.Ledger.UpdateGoalSettings(ledger.GoalSettingsPatch{DefaultCodingLanguage: &lang}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preferred language set to %s\n", lang)
			return nil
		},
	}
}
