package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/luxlife/millionaire-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: a full player lifecycle from registration through spending
func (s *IntegrationSuite) TestPlayerLifecycle() {
	// Setup: Queue id suffixes for registration
	s.app.MockRandom.QueueString("aaaaaaaaa", "bbbbbbbbb")

	// Step 1: Register and log in
	account, err := s.app.DirectoryService.Register(s.ctx, "alice", "alice@example.com", "secret123")
	s.Require().NoError(err)

	_, err = s.app.DirectoryService.Authenticate(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	current, err := s.app.DirectoryService.CurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(current)
	s.Equal(account.ID, current.ID)

	// Step 2: Starting record is in place
	record, err := s.app.ProgressionService.Fetch(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(int64(5000), record.Balance)

	// Step 3: Grind jobs until a BMW is affordable
	record, err = s.app.EconomyService.CompleteJob(s.ctx, account.ID, 25000)
	s.Require().NoError(err)
	s.Equal(int64(30000), record.Balance)
	s.Equal(int64(250), record.Experience)

	// Step 4: Buy and drive the BMW
	record, err = s.app.EconomyService.BuyVehicle(s.ctx, account.ID, "bmw")
	s.Require().NoError(err)
	s.Equal("bmw", record.CurrentVehicle)
	s.Equal(int64(5000), record.Balance)

	// Step 5: A cash pack funds a trip to Milano
	record, err = s.app.EconomyService.BuyShopItem(s.ctx, account.ID, "cash_starter")
	s.Require().NoError(err)
	s.Equal(int64(55000), record.Balance)

	record, err = s.app.EconomyService.Travel(s.ctx, account.ID, "milano")
	s.Require().NoError(err)
	s.Equal("milano", record.CurrentCity)
	s.Equal(int64(40000), record.Balance)
	s.Equal(2, record.Stats.CitiesVisited)

	// Step 6: A second account shows up behind alice on the leaderboard
	_, err = s.app.DirectoryService.Register(s.ctx, "bob", "bob@example.com", "secret123")
	s.Require().NoError(err)

	entries, err := s.app.ProgressionService.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("alice", entries[0].Handle)
	s.Equal("bob", entries[1].Handle)

	// Step 7: Logout ends the session
	s.Require().NoError(s.app.DirectoryService.EndSession(s.ctx))
	current, err = s.app.DirectoryService.CurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(current)
}

// Test: re-login on a later day updates last-login but keeps progression
func (s *IntegrationSuite) TestReturningPlayerKeepsProgress() {
	s.app.MockRandom.QueueString("aaaaaaaaa")

	account, err := s.app.DirectoryService.Register(s.ctx, "alice", "alice@example.com", "secret123")
	s.Require().NoError(err)

	_, err = s.app.EconomyService.CompleteJob(s.ctx, account.ID, 10000)
	s.Require().NoError(err)

	s.app.MockClock.Advance(48 * time.Hour)

	returned, err := s.app.DirectoryService.Authenticate(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	s.Equal(s.app.MockClock.Now(), returned.LastLogin)

	record, err := s.app.ProgressionService.Fetch(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(int64(15000), record.Balance)
	s.Equal(1, record.CompletedJobs)
}

func (s *IntegrationSuite) TestStorageSelection() {
	app, err := New(Config{StorageType: StorageTypeMemory})
	s.Require().NoError(err)
	s.NotNil(app.Storage)

	_, err = New(Config{StorageType: "cassette-tape"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err) // RedisConfig missing
}

func (s *IntegrationSuite) TestFactoryDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)

	s.Require().NoError(app.Storage.SaveAccount(s.ctx, &model.Account{ID: "u_1", Handle: "alice"}))
	account, err := app.Storage.GetAccount(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal("alice", account.Handle)
}
