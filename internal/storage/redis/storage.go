package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/storage"
)

// casRetries bounds optimistic-lock retries for the account collection
const casRetries = 5

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, infraErr(err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// infraErr tags infrastructure failures so callers can match the taxonomy
func infraErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}

// Account operations
//
// The account collection lives in a single JSON array entry; writes go
// through WATCH so concurrent registrations cannot clobber each other.

func (s *Storage) loadAccounts(ctx context.Context, c redis.Cmdable) ([]*model.Account, error) {
	data, err := c.Get(ctx, accountsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infraErr(err)
	}

	var accounts []*model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	save := func(tx *redis.Tx) error {
		accounts, err := s.loadAccounts(ctx, tx)
		if err != nil {
			return err
		}

		replaced := false
		for i, a := range accounts {
			if a.ID == account.ID {
				accounts[i] = account
				replaced = true
				break
			}
		}
		if !replaced {
			accounts = append(accounts, account)
		}

		data, err := json.Marshal(accounts)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, accountsKey(), data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < casRetries; i++ {
		err := s.client.Watch(ctx, save, accountsKey())
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return model.ErrUpdateConflict
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	accounts, err := s.loadAccounts(ctx, s.client)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

func (s *Storage) GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error) {
	accounts, err := s.loadAccounts(ctx, s.client)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Handle == handle {
			return a, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

func (s *Storage) GetAccountByAddress(ctx context.Context, address string) (*model.Account, error) {
	accounts, err := s.loadAccounts(ctx, s.client)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Address == address {
			return a, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.loadAccounts(ctx, s.client)
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKey(), data, 0).Err(); err != nil {
		return infraErr(err)
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, infraErr(err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey()).Err(); err != nil {
		return infraErr(err)
	}
	return nil
}

// Progression operations

func (s *Storage) CreateProgression(ctx context.Context, record *model.ProgressionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	set, err := s.client.SetNX(ctx, progressionKey(record.AccountID), data, 0).Result()
	if err != nil {
		return infraErr(err)
	}
	if !set {
		return model.ErrProgressionExists
	}
	return nil
}

func (s *Storage) GetProgression(ctx context.Context, id model.AccountID) (*model.ProgressionRecord, error) {
	data, err := s.client.Get(ctx, progressionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProgressionNotFound
		}
		return nil, infraErr(err)
	}

	var record model.ProgressionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) SaveProgression(ctx context.Context, record *model.ProgressionRecord) error {
	key := progressionKey(record.AccountID)

	save := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrProgressionNotFound
			}
			return infraErr(err)
		}

		var current model.ProgressionRecord
		if err := json.Unmarshal(data, &current); err != nil {
			return err
		}
		if current.Version != record.Version-1 {
			return model.ErrUpdateConflict
		}

		updated, err := json.Marshal(record)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, save, key)
	if errors.Is(err, redis.TxFailedErr) {
		// Key changed between read and write: same stale-version condition
		return model.ErrUpdateConflict
	}
	return err
}
