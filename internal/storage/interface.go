package storage

import (
	"context"

	"github.com/luxlife/millionaire-go/internal/model"
)

// Storage defines the interface for data persistence. The layout follows one
// logical namespace per concern: the account collection, a single session
// slot, and one progression entry per account.
type Storage interface {
	// Account operations. SaveAccount inserts or updates and keeps the
	// handle/address lookup indexes in sync.
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error)
	GetAccountByAddress(ctx context.Context, address string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)

	// Session operations. The client holds at most one session; Save replaces
	// any prior one and Delete is idempotent.
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context) (*model.Session, error)
	DeleteSession(ctx context.Context) error

	// Progression operations. CreateProgression fails with
	// model.ErrProgressionExists if a record is already present.
	// SaveProgression is a compare-and-set: it succeeds only when the stored
	// version is exactly one less than the record's, failing with
	// model.ErrUpdateConflict otherwise.
	CreateProgression(ctx context.Context, record *model.ProgressionRecord) error
	GetProgression(ctx context.Context, id model.AccountID) (*model.ProgressionRecord, error)
	SaveProgression(ctx context.Context, record *model.ProgressionRecord) error
}
