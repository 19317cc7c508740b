package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iliyamo/storefront-client/internal/model"
)

// GetOrders fetches the authenticated user's order history.
func (c *Client) GetOrders(ctx context.Context) ([]model.Order, error) {
	return getJSON[[]model.Order](ctx, c, "/api/orders", nil, true)
}

// CreateOrder places an order built from the server-side cart.
func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	return sendJSON[*model.Order](ctx, c, http.MethodPost, "/api/orders", req, true)
}

type statusUpdate struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order to a new status.  The backend
// enforces that only privileged roles may call this.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*model.Order, error) {
	path := "/api/orders/" + strconv.FormatInt(orderID, 10) + "/status"
	return sendJSON[*model.Order](ctx, c, http.MethodPut, path, statusUpdate{Status: status}, true)
}

type paymentRequest struct {
	OrderID int64 `json:"orderId"`
}

// CreatePaymentSession opens a hosted payment session for an order and
// returns the redirect handle.
func (c *Client) CreatePaymentSession(ctx context.Context, orderID int64) (*model.PaymentSession, error) {
	return sendJSON[*model.PaymentSession](ctx, c, http.MethodPost, "/api/payments/create-session", paymentRequest{OrderID: orderID}, true)
}
