// Package storage persists the authenticated session between runs:
// exactly two logical keys, the bearer token and the cached user
// profile.  Only the auth store writes here; the API gateway reads the
// token when injecting the Authorization header and clears both keys
// when the backend rejects an authenticated call.
package storage

import (
	"context"

	"github.com/iliyamo/storefront-client/internal/model"
)

// SessionStore is the durable key-value surface for session state.
// Absent values are reported as the zero value with a nil error, not as
// a distinct error: a missing token simply means anonymous.
// Implementations: file (default), redis (shared environments), memory
// (tests).
type SessionStore interface {
	// Token returns the persisted bearer token, or "" when none is stored.
	Token(ctx context.Context) (string, error)
	// SetToken persists the bearer token.
	SetToken(ctx context.Context, token string) error
	// User returns the cached user profile, or nil when none is stored.
	User(ctx context.Context) (*model.User, error)
	// SetUser caches the user profile.
	SetUser(ctx context.Context, u *model.User) error
	// Clear removes both the token and the cached user.
	Clear(ctx context.Context) error
}

var (
	_ SessionStore = (*FileStore)(nil)
	_ SessionStore = (*RedisStore)(nil)
	_ SessionStore = (*MemoryStore)(nil)
)
