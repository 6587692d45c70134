// Package economy implements the game-rule side of the screens: it validates
// affordability and prerequisites against the catalogs, computes the patch an
// action implies, and submits it to the progression store. The store itself
// never re-checks these rules.
package economy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/luxlife/millionaire-go/internal/catalog"
	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/services/progression"
)

// Errors
var (
	ErrUnknownItem          = errors.New("unknown catalog id")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAlreadyUnlocked      = errors.New("item already unlocked")
	ErrNotUnlocked          = errors.New("item not unlocked")
	ErrAlreadyAtDestination = errors.New("already in this city")
	ErrInvalidEarnings      = errors.New("earnings must be positive")
)

// Shop item with a bespoke effect
const instantLevelItem = "boost_instant_level"

// Service applies the game's economic actions
type Service struct {
	progression *progression.Service
	catalog     *catalog.Catalog
	logger      *slog.Logger
}

// New creates a new economy service
func New(progressionService *progression.Service, cat *catalog.Catalog, logger *slog.Logger) *Service {
	return &Service{
		progression: progressionService,
		catalog:     cat,
		logger:      logger,
	}
}

// Catalog exposes the static catalogs for delivery layers
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// CompleteJob credits mini-game earnings: balance grows by the earnings,
// experience by earnings/100, the level is recomputed and the job counters
// advance
func (s *Service) CompleteJob(ctx context.Context, accountID model.AccountID, earnings int64) (*model.ProgressionRecord, error) {
	if earnings <= 0 {
		return nil, ErrInvalidEarnings
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}

	gained := earnings / 100
	stats := record.Stats
	stats.TotalEarnings += earnings
	stats.JobsCompleted++

	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		AddBalance:       ptr(earnings),
		AddExperience:    ptr(gained),
		Level:            ptr(model.LevelForExperience(record.Experience + gained)),
		AddCompletedJobs: ptr(1),
		Stats:            &stats,
	})
}

// BuyVehicle unlocks and selects a vehicle after checking funds and the
// unlocked set
func (s *Service) BuyVehicle(ctx context.Context, accountID model.AccountID, vehicleID string) (*model.ProgressionRecord, error) {
	vehicle, ok := s.catalog.Vehicle(vehicleID)
	if !ok {
		return nil, ErrUnknownItem
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if record.HasVehicle(vehicleID) {
		return nil, ErrAlreadyUnlocked
	}
	if record.Balance < vehicle.Price {
		return nil, ErrInsufficientFunds
	}

	stats := record.Stats
	stats.CarsOwned++

	s.logger.Info("vehicle purchased",
		slog.String("account_id", string(accountID)),
		slog.String("vehicle", vehicleID),
	)

	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		AddBalance:     ptr(-vehicle.Price),
		UnlockVehicles: []string{vehicleID},
		CurrentVehicle: &vehicleID,
		Stats:          &stats,
	})
}

// SelectVehicle sets the current vehicle; it must already be unlocked
func (s *Service) SelectVehicle(ctx context.Context, accountID model.AccountID, vehicleID string) (*model.ProgressionRecord, error) {
	if _, ok := s.catalog.Vehicle(vehicleID); !ok {
		return nil, ErrUnknownItem
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !record.HasVehicle(vehicleID) {
		return nil, ErrNotUnlocked
	}

	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		CurrentVehicle: &vehicleID,
	})
}

// BuyAvatar unlocks and selects an avatar after checking funds and the
// unlocked set
func (s *Service) BuyAvatar(ctx context.Context, accountID model.AccountID, avatarID string) (*model.ProgressionRecord, error) {
	avatar, ok := s.catalog.Avatar(avatarID)
	if !ok {
		return nil, ErrUnknownItem
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if record.HasAvatar(avatarID) {
		return nil, ErrAlreadyUnlocked
	}
	if record.Balance < avatar.Price {
		return nil, ErrInsufficientFunds
	}

	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		AddBalance:    ptr(-avatar.Price),
		UnlockAvatars: []string{avatarID},
		CurrentAvatar: &avatarID,
	})
}

// SelectAvatar sets the current avatar; it must already be unlocked
func (s *Service) SelectAvatar(ctx context.Context, accountID model.AccountID, avatarID string) (*model.ProgressionRecord, error) {
	if _, ok := s.catalog.Avatar(avatarID); !ok {
		return nil, ErrUnknownItem
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !record.HasAvatar(avatarID) {
		return nil, ErrNotUnlocked
	}

	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		CurrentAvatar: &avatarID,
	})
}

// Travel moves the player to a new city, charging its travel cost. The
// destination must differ from the current city; the visited counter only
// advances on an actual move.
func (s *Service) Travel(ctx context.Context, accountID model.AccountID, cityID string) (*model.ProgressionRecord, error) {
	city, ok := s.catalog.City(cityID)
	if !ok {
		return nil, ErrUnknownItem
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if record.CurrentCity == cityID {
		return nil, ErrAlreadyAtDestination
	}
	if record.Balance < city.Cost {
		return nil, ErrInsufficientFunds
	}

	stats := record.Stats
	stats.CitiesVisited++

	s.logger.Info("traveled",
		slog.String("account_id", string(accountID)),
		slog.String("city", cityID),
	)

	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		AddBalance:  ptr(-city.Cost),
		CurrentCity: &cityID,
		Stats:       &stats,
	})
}

// BuyShopItem applies a simulated shop purchase. Cash packs credit their
// amount, the instant-level boost grants a level and its experience, premium
// items land in the owned-property list. Timed boosts have no persistent
// ledger effect.
func (s *Service) BuyShopItem(ctx context.Context, accountID model.AccountID, itemID string) (*model.ProgressionRecord, error) {
	item, ok := s.catalog.ShopItem(itemID)
	if !ok {
		return nil, ErrUnknownItem
	}

	record, err := s.progression.Fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var patch model.Patch
	switch {
	case item.Category == catalog.CategoryCash:
		stats := record.Stats
		stats.TotalEarnings += item.Amount
		patch = model.Patch{
			AddBalance: ptr(item.Amount),
			Stats:      &stats,
		}
	case item.ID == instantLevelItem:
		patch = model.Patch{
			Level:         ptr(record.Level + 1),
			AddExperience: ptr(int64(1000)),
		}
	case item.Category == catalog.CategoryPremium:
		patch = model.Patch{
			AddProperties: []string{item.ID},
		}
	}

	return s.progression.ApplyUpdate(ctx, accountID, patch)
}

// UpdatePosition persists the player's world position
func (s *Service) UpdatePosition(ctx context.Context, accountID model.AccountID, pos model.Position) (*model.ProgressionRecord, error) {
	return s.progression.ApplyUpdate(ctx, accountID, model.Patch{
		Position: &pos,
	})
}

func ptr[T any](v T) *T {
	return &v
}
