// Package directory implements the account directory: registration,
// authentication and the single-session lifecycle.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/luxlife/millionaire-go/internal/dependencies/clock"
	"github.com/luxlife/millionaire-go/internal/dependencies/random"
	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/services/progression"
	"github.com/luxlife/millionaire-go/internal/storage"
)

// Errors
var (
	ErrDuplicateUser      = errors.New("handle or address already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHandleTooShort     = errors.New("handle must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidAddress     = errors.New("invalid contact address")
)

// Registration policy
const (
	MinHandleLength   = 3
	MinPasswordLength = 6
)

const (
	idSuffixLength   = 9
	idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idAttempts       = 5
)

var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Config holds configuration for the directory service
type Config struct {
	BcryptCost int
}

// DefaultConfig returns default directory configuration
func DefaultConfig() Config {
	return Config{
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Service owns the set of registered accounts and the current session
type Service struct {
	storage     storage.Storage
	progression *progression.Service
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger

	bcryptCost int
}

// New creates a new directory service
func New(
	storage storage.Storage,
	progressionService *progression.Service,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{
		storage:     storage,
		progression: progressionService,
		clock:       clock,
		random:      random,
		logger:      logger,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates a new account and its paired progression record.
// It does not change session state.
func (s *Service) Register(ctx context.Context, handle, address, password string) (*model.Account, error) {
	if len(handle) < MinHandleLength {
		return nil, ErrHandleTooShort
	}
	if !addressPattern.MatchString(address) {
		return nil, ErrInvalidAddress
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Handle and address are unique across all accounts (case-sensitive)
	if _, err := s.storage.GetAccountByHandle(ctx, handle); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}
	if _, err := s.storage.GetAccountByAddress(ctx, address); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	account := &model.Account{
		ID:        id,
		Handle:    handle,
		Address:   address,
		Digest:    string(digest),
		CreatedAt: now,
		LastLogin: now,
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	if _, err := s.progression.Initialize(ctx, account.ID); err != nil {
		return nil, err
	}

	s.logger.Info("account registered",
		slog.String("account_id", string(account.ID)),
		slog.String("handle", account.Handle),
	)

	return account, nil
}

// Authenticate verifies credentials, updates last-login and establishes a new
// session replacing any prior one
func (s *Service) Authenticate(ctx context.Context, handle, password string) (*model.Account, error) {
	account, err := s.storage.GetAccountByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Digest), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	account.LastLogin = now
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	session := &model.Session{
		AccountID: account.ID,
		LoginTime: now,
	}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session established", slog.String("account_id", string(account.ID)))

	return account, nil
}

// CurrentSession resolves the active session to its account. A nil account
// with nil error means no session exists; callers route to authentication.
func (s *Service) CurrentSession(ctx context.Context) (*model.Account, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	account, err := s.storage.GetAccount(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			// Dangling session; should not occur under normal lifecycle
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// EndSession clears the active session. Idempotent.
func (s *Service) EndSession(ctx context.Context) error {
	return s.storage.DeleteSession(ctx)
}

// generateID produces a unique account identifier: millisecond timestamp plus
// a random suffix, collision-checked against the directory
func (s *Service) generateID(ctx context.Context) (model.AccountID, error) {
	for i := 0; i < idAttempts; i++ {
		id := model.AccountID(fmt.Sprintf("u_%d%s",
			s.clock.Now().UnixMilli(),
			s.random.String(idSuffixLength, idSuffixAlphabet),
		))

		_, err := s.storage.GetAccount(ctx, id)
		if errors.Is(err, model.ErrAccountNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique account id")
}
