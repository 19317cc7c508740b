package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iliyamo/storefront-client/internal/model"
)

// Cart endpoints all require a session; a 401 on any of them tears the
// stored session down.

// GetCart fetches the authenticated user's cart.
func (c *Client) GetCart(ctx context.Context) (*model.Cart, error) {
	return getJSON[*model.Cart](ctx, c, "/api/cart", nil, true)
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// AddToCart adds quantity units of a product.  Stock limits are the
// backend's call; a stock-exceeded rejection comes back as an ordinary
// client error.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (*model.Cart, error) {
	body := addToCartRequest{ProductID: productID, Quantity: quantity}
	return sendJSON[*model.Cart](ctx, c, http.MethodPost, "/api/cart/add", body, true)
}

type updateCartRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// UpdateCartItem changes the quantity of an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*model.Cart, error) {
	body := updateCartRequest{ItemID: itemID, Quantity: quantity}
	return sendJSON[*model.Cart](ctx, c, http.MethodPut, "/api/cart/update", body, true)
}

// RemoveFromCart deletes one cart line.
func (c *Client) RemoveFromCart(ctx context.Context, itemID int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/cart/remove/"+strconv.FormatInt(itemID, 10), nil, nil, true)
	return err
}

// ClearCart empties the cart server-side.
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/cart/clear", nil, nil, true)
	return err
}
