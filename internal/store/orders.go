package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/api"
	"github.com/iliyamo/storefront-client/internal/model"
)

// Orders holds the order history and drives checkout: placing an order
// from the server-side cart and opening a payment session for it.
type Orders struct {
	api *api.Client
	log *logrus.Entry

	mu      sync.Mutex
	orders  []model.Order
	placing bool
	errMsg  string
}

// NewOrders returns an empty order store.
func NewOrders(client *api.Client, log *logrus.Logger) *Orders {
	return &Orders{
		api: client,
		log: log.WithField("component", "orders"),
	}
}

// FetchOrders reloads the order history.
func (o *Orders) FetchOrders(ctx context.Context) error {
	o.begin()
	orders, err := o.api.GetOrders(ctx)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.placing = false
	if err != nil {
		o.errMsg = api.Message(err, "Failed to fetch orders")
		return err
	}
	o.orders = orders
	return nil
}

// PlaceOrder submits a checkout request.  The backend builds the order
// from its cart and computes the total; the returned order is the
// authoritative result.
func (o *Orders) PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	o.begin()
	order, err := o.api.CreateOrder(ctx, req)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.placing = false
	if err != nil {
		o.errMsg = api.Message(err, "Failed to place order")
		o.log.WithField("error", o.errMsg).Warn("checkout failed")
		return nil, err
	}
	o.orders = append([]model.Order{*order}, o.orders...)
	return order, nil
}

// CreatePaymentSession opens a hosted payment session for a placed
// order and returns the redirect handle for the UI to follow.
func (o *Orders) CreatePaymentSession(ctx context.Context, orderID int64) (*model.PaymentSession, error) {
	sess, err := o.api.CreatePaymentSession(ctx, orderID)
	if err != nil {
		o.mu.Lock()
		o.errMsg = api.Message(err, "Failed to start payment")
		o.mu.Unlock()
		return nil, err
	}
	return sess, nil
}

// UpdateOrderStatus moves an order to a new status and refreshes the
// matching history entry.  The backend decides who may do this.
func (o *Orders) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	updated, err := o.api.UpdateOrderStatus(ctx, orderID, status)
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.errMsg = api.Message(err, "Failed to update order")
		return err
	}
	for i := range o.orders {
		if o.orders[i].ID == updated.ID {
			o.orders[i] = *updated
			break
		}
	}
	return nil
}

// Orders returns the loaded history.
func (o *Orders) Orders() []model.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.orders
}

// Placing reports whether an order action is in flight.
func (o *Orders) Placing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.placing
}

// Err returns the last recorded error message, empty when none.
func (o *Orders) Err() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// ClearError wipes the recorded error message.
func (o *Orders) ClearError() {
	o.mu.Lock()
	o.errMsg = ""
	o.mu.Unlock()
}

func (o *Orders) begin() {
	o.mu.Lock()
	o.placing = true
	o.errMsg = ""
	o.mu.Unlock()
}
