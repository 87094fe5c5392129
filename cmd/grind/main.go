package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/grindcli/grind/internal/cli"
	"github.com/grindcli/grind/internal/intelligence"
	"github.com/grindcli/grind/internal/ledger"
	"github.com/grindcli/grind/internal/llm"
	"github.com/grindcli/grind/internal/reminder"
	"github.com/grindcli/grind/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data directory: env var or default ~/.grind
	home := os.Getenv("GRIND_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		home = filepath.Join(userHome, ".grind")
	}

	// Pick the storage backend. Both back the same full-document slots;
	// sqlite keeps everything in one file with atomic row swaps.
	var ledgerSlot, reminderSlot storage.Slot
	switch store := os.Getenv("GRIND_STORE"); store {
	case "", "file":
		ledgerSlot = storage.NewFileSlot(filepath.Join(home, "ledger.json"))
		reminderSlot = storage.NewFileSlot(filepath.Join(home, "reminder.json"))
	case "sqlite":
		db, err := storage.OpenDB(filepath.Join(home, "grind.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
		ledgerSlot = storage.NewSQLiteSlot(db, "ledger")
		reminderSlot = storage.NewSQLiteSlot(db, "reminder")
	default:
		return fmt.Errorf("unknown GRIND_STORE %q (want file or sqlite)", store)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	app := &cli.App{
		Ledger: ledger.Open(ledgerSlot, logger),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Coach features (only when the LLM is enabled)
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)

		app.Recommend = intelligence.NewRecommendService(llmClient)
		app.Chat = intelligence.NewChatService(llmClient)
	} else {
		// Recommendations still work offline via the deterministic path.
		app.Recommend = intelligence.NewRecommendService(nil)
	}

	remindCfg := reminder.LoadConfig()
	if remindCfg.WebhookURL != "" {
		app.Notifier = reminder.NewNotifier(remindCfg, reminderSlot)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
