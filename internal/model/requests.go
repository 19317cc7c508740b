package model

// Request bodies sent to the backend.  These mirror the backend's DTOs
// one to one; optional fields carry omitempty so the backend's own
// defaults apply when the caller leaves them blank.

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation request body.
type Registration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// PasswordUpdate carries a password change request.
type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ReviewRequest is the body for creating a product review.
type ReviewRequest struct {
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// OrderRequest is the checkout request body.  The backend builds the
// order from the server-side cart; the client only supplies delivery
// and payment intent.
type OrderRequest struct {
	ShippingAddressID int64    `json:"shippingAddressId,omitempty"`
	ShippingAddress   *Address `json:"shippingAddress,omitempty"`
	PaymentMethod     string   `json:"paymentMethod"`
	CouponCode        string   `json:"couponCode,omitempty"`
}
