// Package store holds the client-side state containers: auth, cart,
// product and order state, plus the checkout pricing rules.  Stores
// never open sockets themselves; every network effect goes through the
// api gateway, and every store action follows the same fail-safe shape:
// mark in-flight, call the gateway, replace state wholesale on success,
// record a message and clear the in-flight flag on failure.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/api"
	"github.com/iliyamo/storefront-client/internal/model"
	"github.com/iliyamo/storefront-client/internal/storage"
)

// Status is the auth store's lifecycle position.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
)

// Auth owns the current session.  It is the only writer of the durable
// session storage; the gateway reads the token from there and may clear
// it on a rejected authenticated call, which Auth picks up on the next
// RefreshUser.
type Auth struct {
	api   *api.Client
	store storage.SessionStore
	log   *logrus.Entry

	mu     sync.Mutex
	status Status
	user   *model.User
	token  string
	errMsg string
}

// NewAuth returns an anonymous auth store.  Call Rehydrate to pick up a
// persisted session.
func NewAuth(client *api.Client, store storage.SessionStore, log *logrus.Logger) *Auth {
	return &Auth{
		api:    client,
		store:  store,
		log:    log.WithField("component", "auth"),
		status: StatusAnonymous,
	}
}

// Login authenticates with the backend.  On success the session is held
// in memory and mirrored to durable storage.  On failure the store
// records a message, stays anonymous and returns the error so the
// caller can react to it directly.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) error {
	a.begin()
	sess, err := a.api.Login(ctx, creds)
	if err != nil {
		a.fail(api.Message(err, "Login failed"))
		return err
	}
	return a.establish(ctx, sess)
}

// Register creates an account.  Success means the backend handed back
// both a token and a user; the gateway already enforced that.
func (a *Auth) Register(ctx context.Context, reg model.Registration) error {
	a.begin()
	sess, err := a.api.Register(ctx, reg)
	if err != nil {
		a.fail(api.Message(err, "Registration failed"))
		return err
	}
	return a.establish(ctx, sess)
}

// Logout discards the session from memory and durable storage.  It is
// synchronous and never calls the network.
func (a *Auth) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.WithError(err).Warn("could not clear stored session")
	}
	a.mu.Lock()
	a.user = nil
	a.token = ""
	a.status = StatusAnonymous
	a.errMsg = ""
	a.mu.Unlock()
	a.log.Debug("logged out")
}

// RefreshUser re-fetches the profile to pick up role or profile changes
// made elsewhere.  Any failure invalidates the session: better to log
// the user out than to act on stale roles.
func (a *Auth) RefreshUser(ctx context.Context) error {
	a.mu.Lock()
	authed := a.status == StatusAuthenticated
	a.mu.Unlock()
	if !authed {
		return nil
	}

	user, err := a.api.CurrentUser(ctx)
	if err != nil || user == nil {
		a.Logout(ctx)
		return err
	}
	if err := a.store.SetUser(ctx, user); err != nil {
		a.log.WithError(err).Warn("could not persist refreshed user")
	}
	a.mu.Lock()
	a.user = user
	a.mu.Unlock()
	return nil
}

// Rehydrate restores a persisted session.  It is optimistic: an opaque
// or still-valid token is trusted until the backend says otherwise, but
// a JWT whose exp claim has already passed is dropped on the spot.
// Callers typically run this in a goroutine so first render is never
// blocked on it.
func (a *Auth) Rehydrate(ctx context.Context) {
	token, err := a.store.Token(ctx)
	if err != nil || token == "" {
		return
	}
	if expired(token) {
		a.log.Debug("persisted token expired, discarding session")
		if err := a.store.Clear(ctx); err != nil {
			a.log.WithError(err).Warn("could not clear stored session")
		}
		return
	}
	user, err := a.store.User(ctx)
	if err != nil || user == nil {
		return
	}
	a.mu.Lock()
	a.user = user
	a.token = token
	a.status = StatusAuthenticated
	a.mu.Unlock()
	a.log.WithField("email", user.Email).Debug("session rehydrated")
}

// expired reports whether a token is a JWT whose exp claim has passed.
// Tokens that do not parse as JWTs are not considered expired; the
// backend remains the authority on those.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// IsAuthenticated reports whether both a user and a token are present.
func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.token != ""
}

// Role predicates.  Each is a pure read over the current user's role
// set and answers false, not an error, when nobody is logged in.

func (a *Auth) IsAdmin() bool    { return a.hasRole(model.RoleAdmin) }
func (a *Auth) IsSeller() bool   { return a.hasRole(model.RoleSeller) }
func (a *Auth) IsCustomer() bool { return a.hasRole(model.RoleCustomer) }

func (a *Auth) hasRole(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user.HasRole(name)
}

// User returns the current user, nil when anonymous.
func (a *Auth) User() *model.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

// Status returns the lifecycle position.
func (a *Auth) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Err returns the last recorded error message, empty when none.
func (a *Auth) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

// ClearError wipes the recorded error message.
func (a *Auth) ClearError() {
	a.mu.Lock()
	a.errMsg = ""
	a.mu.Unlock()
}

func (a *Auth) begin() {
	a.mu.Lock()
	a.status = StatusAuthenticating
	a.errMsg = ""
	a.mu.Unlock()
}

func (a *Auth) fail(msg string) {
	a.mu.Lock()
	a.status = StatusAnonymous
	a.user = nil
	a.token = ""
	a.errMsg = msg
	a.mu.Unlock()
	a.log.WithField("error", msg).Warn("auth action failed")
}

// establish persists and installs a fresh session.  Only the session
// itself goes to durable storage; transient flags never do.
func (a *Auth) establish(ctx context.Context, sess model.Session) error {
	if err := a.store.SetToken(ctx, sess.Token); err != nil {
		a.log.WithError(err).Warn("could not persist token")
	}
	if err := a.store.SetUser(ctx, sess.User); err != nil {
		a.log.WithError(err).Warn("could not persist user")
	}
	a.mu.Lock()
	a.user = sess.User
	a.token = sess.Token
	a.status = StatusAuthenticated
	a.mu.Unlock()
	a.log.WithField("email", sess.User.Email).Debug("authenticated")
	return nil
}
