package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/frontandrew/motofleet/internal/app"
	"github.com/frontandrew/motofleet/internal/delivery/cli"
	"github.com/frontandrew/motofleet/internal/pkg/config"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
)

// cliLogFile remplace la sortie standard pour ne pas mélanger logs et saisies
const cliLogFile = "motofleet-cli.log"

func main() {
	// =========================================================================
	// Configuration
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Logger
	// =========================================================================

	output := cfg.Logger.Output
	if output == "" || output == "stdout" {
		output = cliLogFile
	}
	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, output)
	log.Info("Starting MotoFleet CLI", map[string]interface{}{
		"seed_file":  cfg.SeedFile,
		"export_dir": cfg.ExportDir,
	})

	// =========================================================================
	// Dépôts, notifications et cas d'utilisation
	// =========================================================================

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		log.Fatal("Failed to build application", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer application.Close()

	// =========================================================================
	// Terminal interactif
	// =========================================================================

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".motofleet_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal("Failed to initialize terminal", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer rl.Close()

	menu := cli.New(application.Services, rl, rl.Stdout(), log, cfg.ExportDir)
	if err := menu.Run(ctx); err != nil {
		log.Error("CLI stopped with error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	log.Info("MotoFleet CLI stopped")
}
