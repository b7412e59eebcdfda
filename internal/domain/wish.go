package domain

import (
	"errors"
	"time"
)

var ErrWishNotFound = errors.New("wish not found")

type Wish struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	PhotoURL    *string    `json:"photo_url,omitempty" db:"photo_url"`
	Link        *string    `json:"link,omitempty" db:"link"`
	Price       *float64   `json:"price,omitempty" db:"price"`
	Status      WishStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type WishStatus string

const (
	WishStatusActive  WishStatus = "active"
	WishStatusDeleted WishStatus = "deleted"
)

type CreateWishInput struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Link        *string  `json:"link,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// UpdateWishInput carries a partial patch: nil fields are left untouched.
type UpdateWishInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Link        *string  `json:"link,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}
