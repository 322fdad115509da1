package memory

import (
	"context"
	"sync"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
)

// Storage keeps the record in memory; it is lost when the process exits
type Storage struct {
	mu    sync.RWMutex
	stats *entities.Stats
	saves int
}

// New creates an empty in-memory store
func New() *Storage {
	return &Storage{}
}

// NewWithStats creates a store that already holds a record
func NewWithStats(stats entities.Stats) *Storage {
	return &Storage{stats: &stats}
}

// Load returns the stored record or storage.ErrStatsNotFound
func (s *Storage) Load(ctx context.Context) (*entities.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stats == nil {
		return nil, storage.ErrStatsNotFound
	}
	stats := *s.stats
	return &stats, nil
}

// Save replaces the stored record
func (s *Storage) Save(ctx context.Context, stats *entities.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *stats
	s.stats = &saved
	s.saves++
	return nil
}

// Saves returns how many times Save has been called
func (s *Storage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Close is a no-op for the memory store
func (s *Storage) Close() error {
	return nil
}

var _ storage.StatsStore = (*Storage)(nil)
