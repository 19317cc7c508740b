package api

import (
	"context"
	"net/http"

	"github.com/iliyamo/storefront-client/internal/model"
)

// Login exchanges credentials for a normalized session.  The call is
// public: no token is attached and a 401 here means bad credentials,
// not a torn-down session.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, false)
	if err != nil {
		return model.Session{}, err
	}
	return normalizeSession(data)
}

// Register creates an account and, like Login, normalizes whatever
// shape the backend answers with into a session.
func (c *Client) Register(ctx context.Context, reg model.Registration) (model.Session, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, false)
	if err != nil {
		return model.Session{}, err
	}
	return normalizeSession(data)
}

// CurrentUser re-fetches the authenticated account's profile.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	return getJSON[*model.User](ctx, c, "/auth/me", nil, true)
}
