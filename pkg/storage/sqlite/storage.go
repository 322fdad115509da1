package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/tucojack/pkg/db/migrations"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

// Storage keeps the win/loss record in a single row of a SQLite database
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and applies pending migrations
func New(dbPath string) (*Storage, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	migrator := migrations.NewMigrator(db, migrations.Embedded())
	if _, err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storage{db: db}, nil
}

// Load reads the record row
func (s *Storage) Load(ctx context.Context) (*entities.Stats, error) {
	var stats entities.Stats
	query := `SELECT wins, losses FROM stats WHERE id = 1`

	err := s.db.QueryRowContext(ctx, query).Scan(&stats.Wins, &stats.Losses)
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
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id)
		DO UPDATE SET wins = excluded.wins, losses = excluded.losses, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, stats.Wins, stats.Losses); err != nil {
		return fmt.Errorf("error saving stats: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

var _ storage.StatsStore = (*Storage)(nil)
