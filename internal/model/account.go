package model

import "time"

// AccountID uniquely identifies a player account across the system
type AccountID string

// Account represents a registered player identity
type Account struct {
	ID        AccountID `json:"id"`
	Handle    string    `json:"handle"`  // display name, unique (case-sensitive)
	Address   string    `json:"address"` // contact email, unique
	Digest    string    `json:"digest"`  // bcrypt credential digest
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"` // updated on every successful authentication
}

// Session is the single active login binding the client to one account.
// Presence of a session implies the referenced account exists; absence means
// the client must route to authentication.
type Session struct {
	AccountID AccountID `json:"account_id"`
	LoginTime time.Time `json:"login_time"`
}
