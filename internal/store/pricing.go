package store

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Checkout pricing rules as the storefront presents them.  These feed
// the order summary the user sees before checkout; the backend still
// recomputes the final total when the order is placed.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	shippingFee           = decimal.RequireFromString("9.99")
	taxRate               = decimal.RequireFromString("0.08")
	couponRate            = decimal.RequireFromString("0.10")
)

// CouponSave10 takes 10% off the subtotal.  Matching is
// case-insensitive.
const CouponSave10 = "SAVE10"

// Quote is the order summary for a cart subtotal and an optional coupon
// code.
//
// Fields:
//  Subtotal      – sum of line subtotals, as given.
//  Shipping      – flat fee, waived above the free-shipping threshold.
//  Tax           – sales tax on the subtotal.
//  Discount      – coupon discount, zero when no valid coupon applied.
//  Total         – subtotal + shipping + tax − discount.
//  CouponApplied – whether the code was recognized.
type Quote struct {
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	CouponApplied bool
}

// NewQuote prices a subtotal.  Orders over the threshold ship free;
// tax is 8% of the subtotal; an unrecognized coupon code simply applies
// no discount rather than failing the quote.
func NewQuote(subtotal decimal.Decimal, couponCode string) Quote {
	q := Quote{
		Subtotal: subtotal,
		Shipping: shippingFee,
		Tax:      subtotal.Mul(taxRate).Round(2),
		Discount: decimal.Zero,
	}
	if subtotal.GreaterThan(freeShippingThreshold) {
		q.Shipping = decimal.Zero
	}
	if strings.EqualFold(strings.TrimSpace(couponCode), CouponSave10) {
		q.Discount = subtotal.Mul(couponRate).Round(2)
		q.CouponApplied = true
	}
	q.Total = q.Subtotal.Add(q.Shipping).Add(q.Tax).Sub(q.Discount)
	return q
}
