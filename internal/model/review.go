package model

import "time"

// Review is a product review as returned by the backend.
type Review struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"productId"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
