// Package sqlite implements the storage interface over a single local SQLite
// file, the on-device persistence option. Records are stored as JSON
// documents, one table per logical namespace.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	seq     INTEGER PRIMARY KEY AUTOINCREMENT,
	id      TEXT NOT NULL UNIQUE,
	handle  TEXT NOT NULL UNIQUE,
	address TEXT NOT NULL UNIQUE,
	doc     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS session (
	slot INTEGER PRIMARY KEY CHECK (slot = 0),
	doc  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS progression (
	account_id TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	doc        TEXT NOT NULL
);
`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite store at the given path and
// bootstraps the schema
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, infraErr(err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close releases the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// infraErr tags infrastructure failures so callers can match the taxonomy
func infraErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	doc, err := json.Marshal(account)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, handle, address, doc) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			handle = excluded.handle,
			address = excluded.address,
			doc = excluded.doc`,
		string(account.ID), account.Handle, account.Address, string(doc))
	if err != nil {
		return infraErr(err)
	}
	return nil
}

func (s *Storage) getAccountWhere(ctx context.Context, where string, arg any) (*model.Account, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, "SELECT doc FROM accounts WHERE "+where, arg).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, infraErr(err)
	}

	var account model.Account
	if err := json.Unmarshal([]byte(doc), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	return s.getAccountWhere(ctx, "id = ?", string(id))
}

func (s *Storage) GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error) {
	return s.getAccountWhere(ctx, "handle = ?", handle)
}

func (s *Storage) GetAccountByAddress(ctx context.Context, address string) (*model.Account, error) {
	return s.getAccountWhere(ctx, "address = ?", address)
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT doc FROM accounts ORDER BY seq")
	if err != nil {
		return nil, infraErr(err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []*model.Account
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, infraErr(err)
		}
		var account model.Account
		if err := json.Unmarshal([]byte(doc), &account); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, infraErr(err)
	}
	return accounts, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	doc, err := json.Marshal(session)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session (slot, doc) VALUES (0, ?)
		ON CONFLICT(slot) DO UPDATE SET doc = excluded.doc`, string(doc))
	if err != nil {
		return infraErr(err)
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, "SELECT doc FROM session WHERE slot = 0").Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, infraErr(err)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(doc), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return infraErr(err)
	}
	return nil
}

// Progression operations

func (s *Storage) CreateProgression(ctx context.Context, record *model.ProgressionRecord) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO progression (account_id, version, doc) VALUES (?, ?, ?)
		ON CONFLICT(account_id) DO NOTHING`,
		string(record.AccountID), record.Version, string(doc))
	if err != nil {
		return infraErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return infraErr(err)
	}
	if n == 0 {
		return model.ErrProgressionExists
	}
	return nil
}

func (s *Storage) GetProgression(ctx context.Context, id model.AccountID) (*model.ProgressionRecord, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, "SELECT doc FROM progression WHERE account_id = ?", string(id)).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProgressionNotFound
		}
		return nil, infraErr(err)
	}

	var record model.ProgressionRecord
	if err := json.Unmarshal([]byte(doc), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) SaveProgression(ctx context.Context, record *model.ProgressionRecord) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE progression SET version = ?, doc = ?
		WHERE account_id = ? AND version = ?`,
		record.Version, string(doc), string(record.AccountID), record.Version-1)
	if err != nil {
		return infraErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return infraErr(err)
	}
	if n == 1 {
		return nil
	}

	// Distinguish a missing record from a stale version
	var exists int
	err = s.db.QueryRowContext(ctx, "SELECT 1 FROM progression WHERE account_id = ?", string(record.AccountID)).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrProgressionNotFound
	}
	if err != nil {
		return infraErr(err)
	}
	return model.ErrUpdateConflict
}
