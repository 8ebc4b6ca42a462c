package backend

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/gateway/memory"
	"fintrack/internal/gateway/remote"
	"fintrack/internal/storage"
)

type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the gateway for the configured backend type.
func (f *Factory) Create(ctx context.Context, cfg Config) (*Result, error) {
	switch cfg.Type {
	case RemoteBackend:
		return f.createRemote(ctx, cfg)
	case SQLiteBackend:
		return f.createSQLite(cfg)
	case MemoryBackend:
		return f.createMemory()
	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}
}

func (f *Factory) createRemote(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.RemoteBaseURL == "" {
		return nil, fmt.Errorf("remote backend requires a base URL")
	}

	cli, err := remote.New(cfg.RemoteBaseURL)
	if err != nil {
		return nil, fmt.Errorf("initialize remote client: %w", err)
	}

	// The upstream data endpoints are session-credentialed; log in up
	// front when credentials are configured.
	if cfg.RemoteEmail != "" {
		if err := cli.Login(ctx, cfg.RemoteEmail, cfg.RemotePassword); err != nil {
			return nil, fmt.Errorf("login to remote backend: %w", err)
		}
	}

	f.logger.Info("Initialized remote backend", "base_url", cfg.RemoteBaseURL)
	return &Result{Gateway: cli}, nil
}

func (f *Factory) createSQLite(cfg Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
	return &Result{Gateway: repo, Cleanup: repo.Close}, nil
}

func (f *Factory) createMemory() (*Result, error) {
	f.logger.Info("Initialized memory backend")
	return &Result{Gateway: memory.New()}, nil
}
