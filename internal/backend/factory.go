package backend

import (
	"context"
	"fmt"
	"log/slog"

	"vypiska/internal/config"
	gsheet "vypiska/internal/statement/google"
	"vypiska/internal/statement/memory"
	"vypiska/internal/statement/xlsx"
	"vypiska/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		XLSXPath:     appConfig.XLSXPath,
		XLSXSheet:    appConfig.XLSXSheet,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// CreateSource implements Factory.CreateSource.
func (f *DefaultFactory) CreateSource(ctx context.Context, cfg Config) (*Result, error) {
	switch cfg.Type {
	case XLSXBackend:
		return f.createXLSXSource(cfg)
	case SheetsBackend:
		return f.createSheetsSource(ctx)
	case SQLiteBackend:
		return f.createSQLiteSource(cfg)
	case MemoryBackend:
		return f.createMemorySource()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}

func (f *DefaultFactory) createXLSXSource(cfg Config) (*Result, error) {
	if cfg.XLSXPath == "" {
		return nil, fmt.Errorf("statement path is required for xlsx backend")
	}
	src := xlsx.New(cfg.XLSXPath, cfg.XLSXSheet)

	f.logger.Info("Initialized xlsx backend", "path", cfg.XLSXPath)

	return &Result{Source: src}, nil
}

func (f *DefaultFactory) createSheetsSource(ctx context.Context) (*Result, error) {
	src, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets source: %w", err)
	}

	f.logger.Info("Initialized Google Sheets backend")

	return &Result{Source: src}, nil
}

func (f *DefaultFactory) createSQLiteSource(cfg Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)

	return &Result{Source: repo, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) createMemorySource() (*Result, error) {
	store := memory.New(nil)

	f.logger.Info("Initialized memory backend")

	return &Result{Source: store}, nil
}
