package middleware

import (
	"context"
	"net/http"

	"github.com/luxlife/millionaire-go/internal/api/apierr"
	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/services/directory"
)

type contextKey string

const accountContextKey contextKey = "account"

// Auth creates authentication middleware. The client holds a single persisted
// session (no bearer tokens); requests are authorized by resolving it.
func Auth(directoryService *directory.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, err := directoryService.CurrentSession(r.Context())
			if err != nil {
				apierr.WriteError(w, err)
				return
			}
			if account == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccount returns the authenticated account from the request context
func GetAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}

// MustGetAccount returns the authenticated account or panics
func MustGetAccount(ctx context.Context) *model.Account {
	account := GetAccount(ctx)
	if account == nil {
		panic("no account in context - auth middleware not applied?")
	}
	return account
}
