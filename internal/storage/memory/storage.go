package memory

import (
	"context"
	"sync"

	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts     map[model.AccountID]*model.Account
	handleIndex  map[string]model.AccountID
	addressIndex map[string]model.AccountID
	order        []model.AccountID // registration order, for stable listing

	session *model.Session

	progressions map[model.AccountID]*model.ProgressionRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:     make(map[model.AccountID]*model.Account),
		handleIndex:  make(map[string]model.AccountID),
		addressIndex: make(map[string]model.AccountID),
		progressions: make(map[model.AccountID]*model.ProgressionRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; !ok {
		s.order = append(s.order, account.ID)
	}
	copied := *account
	s.accounts[account.ID] = &copied
	s.handleIndex[account.Handle] = account.ID
	s.addressIndex[account.Address] = account.ID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *Storage) GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.handleIndex[handle]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *Storage) GetAccountByAddress(ctx context.Context, address string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.addressIndex[address]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]*model.Account, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.accounts[id]
		accounts = append(accounts, &copied)
	}
	return accounts, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.session = &copied
	return nil
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, model.ErrSessionNotFound
	}
	copied := *s.session
	return &copied, nil
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// Progression operations

func (s *Storage) CreateProgression(ctx context.Context, record *model.ProgressionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.progressions[record.AccountID]; ok {
		return model.ErrProgressionExists
	}
	s.progressions[record.AccountID] = record.Clone()
	return nil
}

func (s *Storage) GetProgression(ctx context.Context, id model.AccountID) (*model.ProgressionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.progressions[id]
	if !ok {
		return nil, model.ErrProgressionNotFound
	}
	return record.Clone(), nil
}

func (s *Storage) SaveProgression(ctx context.Context, record *model.ProgressionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.progressions[record.AccountID]
	if !ok {
		return model.ErrProgressionNotFound
	}
	if current.Version != record.Version-1 {
		return model.ErrUpdateConflict
	}
	s.progressions[record.AccountID] = record.Clone()
	return nil
}
