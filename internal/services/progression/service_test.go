package progression

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/storage/memory"
	"github.com/luxlife/millionaire-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) registerAccount(id, handle string) model.AccountID {
	accountID := model.AccountID(id)
	err := s.storage.SaveAccount(s.ctx, &model.Account{
		ID:        accountID,
		Handle:    handle,
		Address:   handle + "@example.com",
		CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return accountID
}

func ptr[T any](v T) *T {
	return &v
}

// Initialize tests

func (s *ServiceSuite) TestInitializeCreatesStartingRecord() {
	record, err := s.service.Initialize(s.ctx, "u_1")
	s.Require().NoError(err)

	s.Equal(int64(5000), record.Balance)
	s.Equal(int64(0), record.Experience)
	s.Equal(1, record.Level)
	s.Equal("dubai", record.CurrentCity)
	s.Equal("basic", record.CurrentVehicle)
	s.Equal("businessman", record.CurrentAvatar)
	s.Equal([]string{"basic"}, record.UnlockedVehicles)
	s.Equal([]string{"businessman", "entrepreneur", "luxury_woman"}, record.UnlockedAvatars)
	s.Equal(0, record.CompletedJobs)
	s.Empty(record.Properties)
	s.Empty(record.Achievements)
	s.Equal(model.Stats{TotalEarnings: 5000, JobsCompleted: 0, CitiesVisited: 1, CarsOwned: 1}, record.Stats)
	s.Equal(int64(1), record.Version)
}

func (s *ServiceSuite) TestInitializeTwiceFails() {
	_, err := s.service.Initialize(s.ctx, "u_1")
	s.Require().NoError(err)

	_, err = s.service.Initialize(s.ctx, "u_1")
	s.ErrorIs(err, model.ErrProgressionExists)
}

// Fetch tests

func (s *ServiceSuite) TestFetchReturnsInitializedRecord() {
	_, _ = s.service.Initialize(s.ctx, "u_1")

	record, err := s.service.Fetch(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(model.AccountID("u_1"), record.AccountID)
}

func (s *ServiceSuite) TestFetchUnknownAccount() {
	_, err := s.service.Fetch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrProgressionNotFound)
}

// ApplyUpdate tests

func (s *ServiceSuite) TestApplyUpdateMergesAndPersists() {
	_, _ = s.service.Initialize(s.ctx, "u_1")

	updated, err := s.service.ApplyUpdate(s.ctx, "u_1", model.Patch{
		AddBalance:     ptr(int64(1000)),
		UnlockVehicles: []string{"bmw"},
	})
	s.Require().NoError(err)
	s.Equal(int64(6000), updated.Balance)
	s.Equal([]string{"basic", "bmw"}, updated.UnlockedVehicles)
	s.Equal(int64(2), updated.Version)

	fetched, err := s.service.Fetch(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(int64(6000), fetched.Balance)
}

func (s *ServiceSuite) TestApplyUpdateEmptyPatchIsNoOp() {
	_, _ = s.service.Initialize(s.ctx, "u_1")

	updated, err := s.service.ApplyUpdate(s.ctx, "u_1", model.Patch{})
	s.Require().NoError(err)
	s.Equal(int64(1), updated.Version)

	fetched, _ := s.service.Fetch(s.ctx, "u_1")
	s.Equal(int64(5000), fetched.Balance)
	s.Equal(int64(1), fetched.Version)
}

func (s *ServiceSuite) TestApplyUpdateUnknownAccount() {
	_, err := s.service.ApplyUpdate(s.ctx, "nonexistent", model.Patch{AddBalance: ptr(int64(1))})
	s.ErrorIs(err, model.ErrProgressionNotFound)
}

func (s *ServiceSuite) TestConcurrentUpdatesDoNotLoseIncrements() {
	_, _ = s.service.Initialize(s.ctx, "u_1")

	const workers = 10
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.service.ApplyUpdate(s.ctx, "u_1", model.Patch{
				AddBalance: ptr(int64(100)),
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	record, err := s.service.Fetch(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(int64(5000+workers*100), record.Balance)
	s.Equal(int64(1+workers), record.Version)
}

// Leaderboard tests

func (s *ServiceSuite) TestLeaderboardOrdersByBalanceDescending() {
	for _, tc := range []struct {
		id      string
		handle  string
		balance int64
	}{
		{"u_1", "alice", 300},
		{"u_2", "bob", 500},
		{"u_3", "carol", 100},
	} {
		s.registerAccount(tc.id, tc.handle)
		_, err := s.service.Initialize(s.ctx, model.AccountID(tc.id))
		s.Require().NoError(err)
		_, err = s.service.ApplyUpdate(s.ctx, model.AccountID(tc.id), model.Patch{
			Balance: ptr(tc.balance),
		})
		s.Require().NoError(err)
	}

	entries, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("bob", entries[0].Handle)
	s.Equal(int64(500), entries[0].Balance)
	s.Equal("alice", entries[1].Handle)
	s.Equal("carol", entries[2].Handle)
}

func (s *ServiceSuite) TestLeaderboardSkipsAccountsWithoutProgression() {
	s.registerAccount("u_1", "alice")
	_, _ = s.service.Initialize(s.ctx, "u_1")
	s.registerAccount("u_2", "bob") // never initialized

	entries, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("alice", entries[0].Handle)
}

func (s *ServiceSuite) TestLeaderboardEmptyDirectory() {
	entries, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}
