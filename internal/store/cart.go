package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/api"
	"github.com/iliyamo/storefront-client/internal/model"
)

// Cart mirrors the server's cart.  The backend is the single source of
// truth for contents and totals: every mutation re-fetches the full
// cart afterwards, so the visible state is always the backend's
// last-known-good snapshot, never a locally patched guess.  A failed
// mutation leaves the previous snapshot untouched.
type Cart struct {
	api *api.Client
	log *logrus.Entry

	mu      sync.Mutex
	cart    *model.Cart
	syncing bool
	errMsg  string
}

// NewCart returns an empty cart store.
func NewCart(client *api.Client, log *logrus.Logger) *Cart {
	return &Cart{
		api: client,
		log: log.WithField("component", "cart"),
	}
}

// FetchCart unconditionally reloads the cart from the backend.
func (c *Cart) FetchCart(ctx context.Context) error {
	c.begin()
	cart, err := c.api.GetCart(ctx)
	if err != nil {
		c.fail(api.Message(err, "Failed to fetch cart"))
		return err
	}
	c.mu.Lock()
	c.cart = cart
	c.syncing = false
	c.mu.Unlock()
	return nil
}

// AddToCart adds quantity units of a product and reloads the canonical
// cart.  Quantity must be positive; stock limits are the backend's
// authority and a stock-exceeded rejection surfaces like any other
// error.
func (c *Cart) AddToCart(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		err := &api.Error{Kind: api.ErrClient, Message: "quantity must be at least 1"}
		c.record(err.Message)
		return err
	}
	c.begin()
	if _, err := c.api.AddToCart(ctx, productID, quantity); err != nil {
		c.fail(api.Message(err, "Failed to add item to cart"))
		return err
	}
	return c.FetchCart(ctx)
}

// UpdateCartItem changes a line's quantity and reloads the canonical
// cart.  Quantities below 1 are rejected by contract: deletion is
// RemoveFromCart, never a zero quantity.
func (c *Cart) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	if quantity < 1 {
		err := &api.Error{Kind: api.ErrClient, Message: "quantity must be at least 1; remove the item instead"}
		c.record(err.Message)
		return err
	}
	c.begin()
	if _, err := c.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		c.fail(api.Message(err, "Failed to update cart item"))
		return err
	}
	return c.FetchCart(ctx)
}

// RemoveFromCart deletes a line and reloads the canonical cart.
func (c *Cart) RemoveFromCart(ctx context.Context, itemID int64) error {
	c.begin()
	if err := c.api.RemoveFromCart(ctx, itemID); err != nil {
		c.fail(api.Message(err, "Failed to remove item from cart"))
		return err
	}
	return c.FetchCart(ctx)
}

// ClearCart empties the cart.  On success the local snapshot is dropped
// without another round trip; an empty cart needs no re-fetch.
func (c *Cart) ClearCart(ctx context.Context) error {
	c.begin()
	if err := c.api.ClearCart(ctx); err != nil {
		c.fail(api.Message(err, "Failed to clear cart"))
		return err
	}
	c.mu.Lock()
	c.cart = nil
	c.syncing = false
	c.mu.Unlock()
	return nil
}

// Cart returns the current snapshot, nil when none has been loaded.
func (c *Cart) Cart() *model.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart
}

// ItemCount sums the quantities across all lines.  Pure read, never
// triggers I/O.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return 0
	}
	total := 0
	for _, item := range c.cart.Items {
		total += item.Quantity
	}
	return total
}

// Total returns the server-reported cart total, zero when no cart is
// loaded.  The client never recomputes this from the lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return decimal.Zero
	}
	return c.cart.TotalAmount
}

// Syncing reports whether a fetch or mutation is in flight.
func (c *Cart) Syncing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncing
}

// Err returns the last recorded error message, empty when none.
func (c *Cart) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// ClearError wipes the recorded error message.
func (c *Cart) ClearError() {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *Cart) begin() {
	c.mu.Lock()
	c.syncing = true
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *Cart) fail(msg string) {
	c.mu.Lock()
	c.syncing = false
	c.errMsg = msg
	c.mu.Unlock()
	c.log.WithField("error", msg).Warn("cart action failed")
}

func (c *Cart) record(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}
