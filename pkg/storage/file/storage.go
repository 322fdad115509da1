package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
)

// Storage keeps the win/loss record in a single JSON file of the form
// {"wins": 3, "losses": 2}. Every save rewrites the whole file.
type Storage struct {
	path string
	mu   sync.Mutex
}

// New creates a file store at path. Nothing is read or written until the
// first Load or Save.
func New(path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("stats file path is required")
	}
	return &Storage{path: path}, nil
}

// Path returns the location of the stats file
func (s *Storage) Path() string {
	return s.path
}

// Load reads the stats file. A missing file is storage.ErrStatsNotFound;
// a file that is not a JSON object is storage.ErrStatsCorrupt. Missing
// fields default to zero.
func (s *Storage) Load(ctx context.Context) (*entities.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, storage.ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var stats entities.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, storage.Corrupt(s.path, err)
	}

	return &stats, nil
}

// Save overwrites the stats file
func (s *Storage) Save(ctx context.Context, stats *entities.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Create directory if it doesn't exist
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Close is a no-op; the file is only open while loading or saving
func (s *Storage) Close() error {
	return nil
}

var _ storage.StatsStore = (*Storage)(nil)
