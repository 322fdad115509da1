package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/storage"
	"github.com/fadedpez/tucojack/pkg/storage/elasticsearch"
	"github.com/fadedpez/tucojack/pkg/storage/file"
	"github.com/fadedpez/tucojack/pkg/storage/memory"
	"github.com/fadedpez/tucojack/pkg/storage/postgres"
	"github.com/fadedpez/tucojack/pkg/storage/redis"
	"github.com/fadedpez/tucojack/pkg/storage/sqlite"
)

// Open returns the stats store selected by cfg.StatsBackend together with the
// name of the backend actually in use. When the configured backend cannot be
// opened it falls back to the JSON file store, and to memory if even that fails.
func Open(ctx context.Context, cfg *config.Config, logger *logging.Logger) (storage.StatsStore, string) {
	if logger == nil {
		logger = logging.Discard
	}

	store, err := open(ctx, cfg, logger)
	if err == nil {
		logger.Info("Using %s stats store", cfg.StatsBackend)
		return store, cfg.StatsBackend
	}

	logger.Warn("Failed to open %s stats store: %v", cfg.StatsBackend, err)
	if cfg.StatsBackend != config.BackendFile {
		fileStore, fileErr := file.New(cfg.StatsFile)
		if fileErr == nil {
			logger.Warn("Falling back to stats file %s", cfg.StatsFile)
			return fileStore, config.BackendFile
		}
		logger.Warn("Failed to open stats file: %v", fileErr)
	}

	logger.Warn("Falling back to in-memory stats (the record will be lost on exit)")
	return memory.New(), config.BackendMemory
}

func open(ctx context.Context, cfg *config.Config, logger *logging.Logger) (storage.StatsStore, error) {
	switch cfg.StatsBackend {
	case config.BackendFile:
		return file.New(cfg.StatsFile)
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		return sqlite.New(cfg.SQLitePath)
	case config.BackendPostgres:
		opts := postgres.DefaultOptions()
		opts.MaxRetries = 5
		opts.RetryDelay = time.Second
		opts.Logger = logger
		return postgres.New(ctx, cfg.Postgres.ConnectionString(), opts)
	case config.BackendRedis:
		return redis.New(ctx, cfg.RedisURL, cfg.RedisKey)
	case config.BackendElasticsearch:
		return elasticsearch.New(elasticsearch.Config{
			URL:      cfg.Elastic.URL,
			Username: cfg.Elastic.Username,
			Password: cfg.Elastic.Password,
			Index:    cfg.Elastic.Index,
		})
	default:
		return nil, fmt.Errorf("unknown stats backend %q", cfg.StatsBackend)
	}
}
