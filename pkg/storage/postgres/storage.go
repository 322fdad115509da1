package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
	_ "github.com/lib/pq"
)

const createStatsTable = `
CREATE TABLE IF NOT EXISTS stats (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// Options controls how long New waits for the server to come up
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
	Logger     *logging.Logger
}

// DefaultOptions retries for about a minute
func DefaultOptions() Options {
	return Options{
		MaxRetries: 30,
		RetryDelay: 2 * time.Second,
		Logger:     logging.Discard,
	}
}

// Storage keeps the win/loss record in a single row of a PostgreSQL table
type Storage struct {
	db *sql.DB
}

// New connects to connStr, retrying while the server is unreachable, and
// creates the stats table when it is missing
func New(ctx context.Context, connStr string, opts Options) (*Storage, error) {
	db, err := waitForDatabase(ctx, connStr, opts)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createStatsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating stats table: %w", err)
	}

	return &Storage{db: db}, nil
}

func waitForDatabase(ctx context.Context, connStr string, opts Options) (*sql.DB, error) {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard
	}

	var lastErr error
	for i := 0; i < opts.MaxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.RetryDelay):
			}
		}

		db, err := sql.Open("postgres", connStr)
		if err != nil {
			lastErr = err
			logger.Warn("Attempt %d: failed to open database connection: %v", i+1, err)
			continue
		}

		if err := db.PingContext(ctx); err != nil {
			lastErr = err
			logger.Warn("Attempt %d: database not reachable: %v", i+1, err)
			db.Close()
			continue
		}

		logger.Info("Connected to PostgreSQL")
		return db, nil
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", opts.MaxRetries, lastErr)
}

// Load reads the record row
func (s *Storage) Load(ctx context.Context) (*entities.Stats, error) {
	var stats entities.Stats
	err := s.db.QueryRowContext(ctx, `SELECT wins, losses FROM stats WHERE id = 1`).Scan(&stats.Wins, &stats.Losses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading stats: %w", err)
	}
	return &stats, nil
}

// Save upserts the record row
func (s *Storage) Save(ctx context.Context, stats *entities.Stats) error {
	query := `
		INSERT INTO stats (id, wins, losses, updated_at)
		VALUES (1, $1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (id)
		DO UPDATE SET wins = EXCLUDED.wins, losses = EXCLUDED.losses, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, stats.Wins, stats.Losses); err != nil {
		return fmt.Errorf("error saving stats: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *Storage) Close() error {
	return s.db.Close()
}

var _ storage.StatsStore = (*Storage)(nil)
