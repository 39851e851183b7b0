package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/coursetrack/internal/catalog"
	"github.com/alexanderramin/coursetrack/internal/cli"
	"github.com/alexanderramin/coursetrack/internal/session"
	"github.com/alexanderramin/coursetrack/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Keep structured logs away from command output.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	// Determine DB path: env var or default ~/.coursetrack/coursetrack.db
	dbPath := os.Getenv("COURSETRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".coursetrack", "coursetrack.db")
	}

	// Optional catalog override; the built-in track is used otherwise.
	cat, err := catalog.LoadOrDefault(os.Getenv("COURSETRACK_CATALOG"))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	kv, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer kv.Close()

	tracker := session.NewController(storage.NewAdapter(kv))
	tracker.Start(context.Background(), cat.SeedState())

	app := &cli.App{
		Tracker: tracker,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func logLevel() slog.Level {
	if os.Getenv("COURSETRACK_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
