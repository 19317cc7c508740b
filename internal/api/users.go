package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iliyamo/storefront-client/internal/model"
)

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*model.User, error) {
	return getJSON[*model.User](ctx, c, "/api/users/profile", nil, true)
}

// UpdateProfile applies a partial profile update and returns the
// updated profile.
func (c *Client) UpdateProfile(ctx context.Context, upd model.ProfileUpdate) (*model.User, error) {
	return sendJSON[*model.User](ctx, c, http.MethodPut, "/api/users/profile", upd, true)
}

// ChangePassword changes the account password.  The backend verifies
// the current password; the client sends both in the clear over TLS and
// never hashes.
func (c *Client) ChangePassword(ctx context.Context, upd model.PasswordUpdate) error {
	_, err := c.do(ctx, http.MethodPut, "/api/users/change-password", nil, upd, true)
	return err
}

// GetReviews fetches the reviews of one product.  Reading reviews is
// public; writing one requires a session.
func (c *Client) GetReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	return getJSON[[]model.Review](ctx, c, "/api/reviews/product/"+strconv.FormatInt(productID, 10), nil, false)
}

// CreateReview posts a review for a product.
func (c *Client) CreateReview(ctx context.Context, req model.ReviewRequest) (*model.Review, error) {
	return sendJSON[*model.Review](ctx, c, http.MethodPost, "/api/reviews", req, true)
}
