package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a cart.  Quantity is always at least 1; the
// backend deletes the line instead of keeping it at zero.  Subtotal is
// computed server-side as price × quantity and is never recomputed here.
//
// Fields:
//  ID              – primary key identifier of the cart line.
//  ProductID       – referenced product.
//  ProductName     – denormalized product name for display.
//  ProductImageURL – denormalized product image for display.
//  Price           – unit price captured when the line was created.
//  Quantity        – units of the product, >= 1.
//  Subtotal        – server-computed price × quantity.
type CartItem struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductImageURL string          `json:"productImageUrl,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// Cart is the server's authoritative cart snapshot.  TotalAmount is
// recomputed by the backend on every mutation; the client treats it as
// read-only truth.
//
// Fields:
//  ID          – primary key identifier of the cart.
//  UserID      – owner of the cart.
//  Items       – ordered cart lines.
//  TotalAmount – server-computed sum of line subtotals.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last mutation.
type Cart struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
