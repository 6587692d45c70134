package redis

import (
	"fmt"

	"github.com/luxlife/millionaire-go/internal/model"
)

// Key prefix for all game data
const keyPrefix = "mlife"

// accountsKey returns the Redis key holding the full account collection,
// serialized as a single JSON array (one logical namespace per concern)
func accountsKey() string {
	return fmt.Sprintf("%s:accounts", keyPrefix)
}

// sessionKey returns the Redis key for the single session slot
func sessionKey() string {
	return fmt.Sprintf("%s:session", keyPrefix)
}

// progressionKey returns the Redis key for an account's progression record
func progressionKey(id model.AccountID) string {
	return fmt.Sprintf("%s:progression:%s", keyPrefix, id)
}
