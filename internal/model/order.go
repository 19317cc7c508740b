package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as reported by the backend.
const (
	OrderPending    = "PENDING"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

// OrderItem is one line of a placed order, frozen at checkout time.
type OrderItem struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductImageURL string          `json:"productImageUrl,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// Order is a placed order as the backend reports it.
//
// Fields:
//  ID              – primary key identifier of the order.
//  UserID          – account that placed the order.
//  Items           – order lines.
//  TotalAmount     – server-computed order total.
//  Status          – one of the Order* status constants.
//  ShippingAddress – destination address.
//  PaymentMethod   – method selected at checkout.
//  PaymentStatus   – backend-reported payment state.
//  CreatedAt       – timestamp of placement.
//  UpdatedAt       – timestamp of last status change.
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	Items           []OrderItem     `json:"orderItems"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	ShippingAddress Address         `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PaymentSession is the redirect handle returned when a payment session
// is created for an order.
type PaymentSession struct {
	SessionID  string `json:"sessionId"`
	SessionURL string `json:"sessionUrl"`
}
