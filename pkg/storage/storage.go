package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadedpez/tucojack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock_storage.go -package=mock_storage

// Common storage errors
var (
	// ErrStatsNotFound means no record has ever been saved
	ErrStatsNotFound = errors.New("stats not found")
	// ErrStatsCorrupt means a record exists but cannot be decoded
	ErrStatsCorrupt = errors.New("stats record is corrupt")
)

// StatsStore persists the win/loss record. Save always overwrites the whole record.
type StatsStore interface {
	// Load returns the saved record, ErrStatsNotFound, or ErrStatsCorrupt
	Load(ctx context.Context) (*entities.Stats, error)

	// Save replaces the saved record
	Save(ctx context.Context, stats *entities.Stats) error

	// Close releases any resources held by the store
	Close() error
}

// LoadStatus describes what LoadStats found
type LoadStatus string

const (
	StatusLoaded  LoadStatus = "LOADED"
	StatusAbsent  LoadStatus = "ABSENT"
	StatusCorrupt LoadStatus = "CORRUPT"
	StatusFailed  LoadStatus = "FAILED"
)

// LoadStats reads the record through store and never fails hard: anything
// other than StatusLoaded yields a zero record. The returned error carries the
// cause for StatusCorrupt and StatusFailed so callers can log it.
func LoadStats(ctx context.Context, store StatsStore) (entities.Stats, LoadStatus, error) {
	stats, err := store.Load(ctx)
	switch {
	case err == nil && stats == nil:
		return entities.Stats{}, StatusAbsent, nil
	case err == nil:
		if !stats.Valid() {
			return entities.Stats{}, StatusCorrupt, fmt.Errorf("%w: negative counter in %+v", ErrStatsCorrupt, *stats)
		}
		return *stats, StatusLoaded, nil
	case errors.Is(err, ErrStatsNotFound):
		return entities.Stats{}, StatusAbsent, nil
	case errors.Is(err, ErrStatsCorrupt):
		return entities.Stats{}, StatusCorrupt, err
	default:
		return entities.Stats{}, StatusFailed, err
	}
}

// Corrupt wraps a decode failure so that errors.Is(err, ErrStatsCorrupt) holds
func Corrupt(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStatsCorrupt, source, err)
}
