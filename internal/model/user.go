package model

import "time"

// Role names as the backend reports them inside a user's role set.
// Membership is checked by name, never by position or hierarchy.
const (
	RoleAdmin    = "ADMIN"
	RoleSeller   = "SELLER"
	RoleCustomer = "CUSTOMER"
)

// Role is one entry of a user's role set.  The backend models roles as
// rows with an ID and a unique name; the client only ever looks at the
// name.
//
// Fields:
//  ID   – numeric identifier of the role.
//  Name – unique role name (e.g. ADMIN, SELLER, CUSTOMER).
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Address is a shipping or billing address attached to a user profile.
type Address struct {
	ID        int64  `json:"id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// User is the profile returned by the backend for the authenticated
// account.  The role set drives the client's role predicates; everything
// else is display data.
//
// Fields:
//  ID          – primary key identifier of the user.
//  Email       – unique email address.
//  FirstName   – given name.
//  LastName    – family name.
//  PhoneNumber – optional contact number.
//  Avatar      – optional avatar image URL.
//  Roles       – set of roles granted to the account.
//  Addresses   – saved addresses, possibly empty.
//  CreatedAt   – timestamp of account creation.
//  UpdatedAt   – timestamp of last profile update.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Roles       []Role    `json:"roles"`
	Addresses   []Address `json:"addresses,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasRole reports whether the user's role set contains the given role
// name.  A nil receiver has no roles.
func (u *User) HasRole(name string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
