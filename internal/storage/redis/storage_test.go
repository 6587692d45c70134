package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/luxlife/millionaire-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) account(id, handle, address string) *model.Account {
	return &model.Account{
		ID:        model.AccountID(id),
		Handle:    handle,
		Address:   address,
		Digest:    "digest",
		CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) record(id string) *model.ProgressionRecord {
	return &model.ProgressionRecord{
		AccountID:        model.AccountID(id),
		Balance:          5000,
		Level:            1,
		CurrentCity:      "dubai",
		CurrentVehicle:   "basic",
		CurrentAvatar:    "businessman",
		UnlockedVehicles: []string{"basic"},
		UnlockedAvatars:  []string{"businessman", "entrepreneur", "luxury_woman"},
		Version:          1,
	}
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := s.account("u_1", "alice", "alice@example.com")

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(account.Handle, retrieved.Handle)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountByHandleAndAddress() {
	_ = s.storage.SaveAccount(s.ctx, s.account("u_1", "alice", "alice@example.com"))
	_ = s.storage.SaveAccount(s.ctx, s.account("u_2", "bob", "bob@example.com"))

	byHandle, err := s.storage.GetAccountByHandle(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(model.AccountID("u_2"), byHandle.ID)

	byAddress, err := s.storage.GetAccountByAddress(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.AccountID("u_1"), byAddress.ID)

	_, err = s.storage.GetAccountByHandle(s.ctx, "carol")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestSaveAccountUpdatesExistingEntry() {
	account := s.account("u_1", "alice", "alice@example.com")
	_ = s.storage.SaveAccount(s.ctx, account)

	account.LastLogin = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal(account.LastLogin, accounts[0].LastLogin)
}

func (s *StorageSuite) TestListAccountsKeepsInsertionOrder() {
	_ = s.storage.SaveAccount(s.ctx, s.account("u_1", "alice", "alice@example.com"))
	_ = s.storage.SaveAccount(s.ctx, s.account("u_2", "bob", "bob@example.com"))

	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal(model.AccountID("u_1"), accounts[0].ID)
	s.Equal(model.AccountID("u_2"), accounts[1].ID)
}

// Session tests

func (s *StorageSuite) TestSessionLifecycle() {
	_, err := s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)

	session := &model.Session{
		AccountID: "u_1",
		LoginTime: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.AccountID("u_1"), retrieved.AccountID)

	s.Require().NoError(s.storage.DeleteSession(s.ctx))
	s.Require().NoError(s.storage.DeleteSession(s.ctx))

	_, err = s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveSessionReplacesPrior() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{AccountID: "u_1"})
	_ = s.storage.SaveSession(s.ctx, &model.Session{AccountID: "u_2"})

	retrieved, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.AccountID("u_2"), retrieved.AccountID)
}

// Progression tests

func (s *StorageSuite) TestCreateAndGetProgression() {
	err := s.storage.CreateProgression(s.ctx, s.record("u_1"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProgression(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(int64(5000), retrieved.Balance)
	s.Equal([]string{"basic"}, retrieved.UnlockedVehicles)
}

func (s *StorageSuite) TestCreateProgressionTwiceFails() {
	_ = s.storage.CreateProgression(s.ctx, s.record("u_1"))

	err := s.storage.CreateProgression(s.ctx, s.record("u_1"))
	s.ErrorIs(err, model.ErrProgressionExists)
}

func (s *StorageSuite) TestGetProgressionNotFound() {
	_, err := s.storage.GetProgression(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrProgressionNotFound)
}

func (s *StorageSuite) TestSaveProgressionAdvancesVersion() {
	_ = s.storage.CreateProgression(s.ctx, s.record("u_1"))

	updated := s.record("u_1")
	updated.Balance = 6000
	updated.Version = 2

	s.Require().NoError(s.storage.SaveProgression(s.ctx, updated))

	retrieved, _ := s.storage.GetProgression(s.ctx, "u_1")
	s.Equal(int64(6000), retrieved.Balance)
	s.Equal(int64(2), retrieved.Version)
}

func (s *StorageSuite) TestSaveProgressionStaleVersionConflicts() {
	_ = s.storage.CreateProgression(s.ctx, s.record("u_1"))

	stale := s.record("u_1")
	stale.Balance = 9999

	err := s.storage.SaveProgression(s.ctx, stale)
	s.ErrorIs(err, model.ErrUpdateConflict)

	retrieved, _ := s.storage.GetProgression(s.ctx, "u_1")
	s.Equal(int64(5000), retrieved.Balance)
}

func (s *StorageSuite) TestSaveProgressionMissingRecord() {
	record := s.record("u_1")
	record.Version = 2

	err := s.storage.SaveProgression(s.ctx, record)
	s.ErrorIs(err, model.ErrProgressionNotFound)
}
