package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spf13/cobra"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/intelligence"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to your practice mentor",
		Long: "Talk to your practice mentor. With a message argument, asks once\n" +
			"and prints the reply; with no arguments, opens an interactive chat.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Chat == nil {
				return fmt.Errorf("chat requires GRIND_LLM_ENABLED=true and a running Ollama")
			}

			language := app.Ledger.Snapshot().GoalSettings.DefaultCodingLanguage

			// One-shot mode.
			if len(args) > 0 {
				reply, err := app.Chat.Reply(context.Background(), intelligence.ChatRequest{
					Message:           strings.Join(args, " "),
					PreferredLanguage: language,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), reply)
				return nil
			}

			if !app.interactive() {
				return fmt.Errorf("interactive chat needs a terminal; pass a message instead")
			}

			p := tea.NewProgram(newChatModel(app, language))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("chat session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Chat ended."))
			return nil
		},
	}
}
