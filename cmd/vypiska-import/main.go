// Command vypiska-import loads a statement from a spreadsheet source and
// caches it in the local SQLite database, replacing any previous import.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"vypiska/internal/backend"
	"vypiska/internal/config"
	"vypiska/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	from := flag.String("from", "xlsx", "source to import from: xlsx or sheets")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if *from != "xlsx" && *from != "sheets" {
		logger.Error("Invalid import source", "from", *from)
		os.Exit(2)
	}

	ctx := context.Background()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Failed to configure backend", "error", err)
		os.Exit(1)
	}
	backendCfg.Type = backend.Type(*from)

	source, err := backend.NewFactory(logger).CreateSource(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize source", "error", err, "from", *from)
		os.Exit(1)
	}
	if source.Cleanup != nil {
		defer source.Cleanup()
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	txs, err := source.Source.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load statement", "error", err, "from", *from)
		os.Exit(1)
	}

	if err := repo.Import(ctx, txs); err != nil {
		logger.Error("Failed to import statement", "error", err)
		os.Exit(1)
	}

	logger.Info("Statement imported", "transactions", len(txs), "db_path", cfg.SQLiteDBPath)
}
