package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
	"github.com/stretchr/testify/suite"
)

type SQLiteStorageTestSuite struct {
	suite.Suite
	ctx    context.Context
	dbPath string
	store  *Storage
}

func TestSQLiteStorage(t *testing.T) {
	suite.Run(t, new(SQLiteStorageTestSuite))
}

func (s *SQLiteStorageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dbPath = filepath.Join(s.T().TempDir(), "data", "tucojack.db")

	store, err := New(s.dbPath)
	s.Require().NoError(err)
	s.store = store
}

func (s *SQLiteStorageTestSuite) TearDownTest() {
	s.store.Close()
}

func (s *SQLiteStorageTestSuite) TestEmptyDatabase() {
	_, err := s.store.Load(s.ctx)
	s.ErrorIs(err, storage.ErrStatsNotFound)
}

func (s *SQLiteStorageTestSuite) TestSaveAndLoad() {
	s.Require().NoError(s.store.Save(s.ctx, &entities.Stats{Wins: 3, Losses: 2}))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.Stats{Wins: 3, Losses: 2}, *loaded)
}

func (s *SQLiteStorageTestSuite) TestSaveOverwrites() {
	s.Require().NoError(s.store.Save(s.ctx, &entities.Stats{Wins: 1, Losses: 1}))
	s.Require().NoError(s.store.Save(s.ctx, &entities.Stats{Wins: 2, Losses: 1}))

	var rows int
	s.Require().NoError(s.store.db.QueryRow(`SELECT COUNT(*) FROM stats`).Scan(&rows))
	s.Equal(1, rows, "the record is a single row")

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.Stats{Wins: 2, Losses: 1}, *loaded)
}

func (s *SQLiteStorageTestSuite) TestReopenKeepsRecordAndSkipsMigrations() {
	s.Require().NoError(s.store.Save(s.ctx, &entities.Stats{Wins: 7, Losses: 4}))
	s.Require().NoError(s.store.Close())

	reopened, err := New(s.dbPath)
	s.Require().NoError(err)
	s.store = reopened

	loaded, err := reopened.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.Stats{Wins: 7, Losses: 4}, *loaded)

	var applied int
	s.Require().NoError(reopened.db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&applied))
	s.Equal(1, applied)
}
