package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
	"github.com/fadedpez/tucojack/pkg/storage/memory"
	mock_storage "github.com/fadedpez/tucojack/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLoadStats(t *testing.T) {
	readErr := errors.New("connection reset")

	testCases := []struct {
		name     string
		stats    *entities.Stats
		err      error
		expected entities.Stats
		status   storage.LoadStatus
		wantErr  error
	}{
		{name: "loaded", stats: &entities.Stats{Wins: 3, Losses: 2}, expected: entities.Stats{Wins: 3, Losses: 2}, status: storage.StatusLoaded},
		{name: "not found", err: storage.ErrStatsNotFound, status: storage.StatusAbsent},
		{name: "nil record", status: storage.StatusAbsent},
		{name: "corrupt", err: storage.Corrupt("stats", errors.New("bad json")), status: storage.StatusCorrupt, wantErr: storage.ErrStatsCorrupt},
		{name: "negative", stats: &entities.Stats{Wins: 1, Losses: -4}, status: storage.StatusCorrupt, wantErr: storage.ErrStatsCorrupt},
		{name: "read failure", err: readErr, status: storage.StatusFailed, wantErr: readErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_storage.NewMockStatsStore(ctrl)
			store.EXPECT().Load(gomock.Any()).Return(tc.stats, tc.err)

			stats, status, err := storage.LoadStats(context.Background(), store)

			assert.Equal(t, tc.expected, stats)
			assert.Equal(t, tc.status, status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrStatsNotFound)

	saved := &entities.Stats{Wins: 2, Losses: 1}
	assert.NoError(t, store.Save(ctx, saved))
	saved.Wins = 99

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entities.Stats{Wins: 2, Losses: 1}, *loaded, "store must keep its own copy")
	assert.Equal(t, 1, store.Saves())
	assert.NoError(t, store.Close())
}
