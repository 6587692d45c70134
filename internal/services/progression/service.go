// Package progression implements the progression store: the per-account
// game-state ledger and the leaderboard view.
//
// The store is a dumb, trusted ledger. It persists whatever patch it is
// given; all game-rule validation (affordability, unlock prerequisites,
// destination checks) belongs to its callers.
package progression

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/storage"
)

// Config holds the fixed starting values for new progression records
type Config struct {
	StartingBalance int64
	StartingCity    string
	StartingVehicle string
	StartingAvatar  string
	StartingAvatars []string
}

// DefaultConfig returns the starting values shipped with the game
func DefaultConfig() Config {
	return Config{
		StartingBalance: 5000,
		StartingCity:    "dubai",
		StartingVehicle: "basic",
		StartingAvatar:  "businessman",
		StartingAvatars: []string{"businessman", "entrepreneur", "luxury_woman"},
	}
}

// Service owns and mutates per-account progression records
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
	cfg     Config

	// Per-account locks serialize ApplyUpdate so two interleaved
	// read-merge-write cycles cannot lose an update
	mu    sync.Mutex
	locks map[model.AccountID]*sync.Mutex
}

// New creates a new progression service
func New(store storage.Storage, cfg Config, logger *slog.Logger) *Service {
	if cfg.StartingCity == "" {
		cfg = DefaultConfig()
	}
	return &Service{
		storage: store,
		logger:  logger,
		cfg:     cfg,
		locks:   make(map[model.AccountID]*sync.Mutex),
	}
}

// Initialize creates the fixed starting record for an account. Called exactly
// once, immediately after account creation; fails with
// model.ErrProgressionExists if a record is already present.
func (s *Service) Initialize(ctx context.Context, accountID model.AccountID) (*model.ProgressionRecord, error) {
	record := &model.ProgressionRecord{
		AccountID:        accountID,
		Balance:          s.cfg.StartingBalance,
		Experience:       0,
		Level:            1,
		CurrentCity:      s.cfg.StartingCity,
		CurrentVehicle:   s.cfg.StartingVehicle,
		CurrentAvatar:    s.cfg.StartingAvatar,
		UnlockedVehicles: []string{s.cfg.StartingVehicle},
		UnlockedAvatars:  append([]string(nil), s.cfg.StartingAvatars...),
		Properties:       []string{},
		Achievements:     []string{},
		Stats: model.Stats{
			TotalEarnings: s.cfg.StartingBalance,
			JobsCompleted: 0,
			CitiesVisited: 1,
			CarsOwned:     1,
		},
		Version: 1,
	}

	if err := s.storage.CreateProgression(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("progression initialized", slog.String("account_id", string(accountID)))

	return record, nil
}

// Fetch returns the record for an account, or model.ErrProgressionNotFound if
// it was never initialized (callers treat that as "not yet playable")
func (s *Service) Fetch(ctx context.Context, accountID model.AccountID) (*model.ProgressionRecord, error) {
	return s.storage.GetProgression(ctx, accountID)
}

// ApplyUpdate merges the patch into the account's record and persists the
// result, returning the new authoritative record. Updates for one account are
// serialized; an empty patch returns the current record unchanged. A failed
// update leaves the persisted record untouched.
func (s *Service) ApplyUpdate(ctx context.Context, accountID model.AccountID, patch model.Patch) (*model.ProgressionRecord, error) {
	unlock := s.lockAccount(accountID)
	defer unlock()

	current, err := s.storage.GetProgression(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	updated := current.Clone()
	patch.Apply(updated)
	updated.Version++

	if err := s.storage.SaveProgression(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Leaderboard joins every account with its progression record, skipping
// accounts without one, ordered by balance descending. Recomputed fully on
// each call; ties keep the underlying listing order.
func (s *Service) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	accounts, err := s.storage.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(accounts))
	for _, account := range accounts {
		record, err := s.storage.GetProgression(ctx, account.ID)
		if err != nil {
			if errors.Is(err, model.ErrProgressionNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, model.LeaderboardEntry{
			Handle:     account.Handle,
			Balance:    record.Balance,
			Level:      record.Level,
			Experience: record.Experience,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	return entries, nil
}

// lockAccount acquires the per-account update lock, returning the release func
func (s *Service) lockAccount(id model.AccountID) func() {
	s.mu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
