package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is a Telegram account known to the app. The primary key is the
// platform-assigned Telegram user id, so it doubles as the chat id for
// outbound messages.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  *string   `json:"username,omitempty" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  *string   `json:"last_name,omitempty" db:"last_name"`
	PhotoURL  *string   `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type UpsertUserInput struct {
	ID        int64   `json:"id"`
	Username  *string `json:"username,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}

func (u *User) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return "@" + *u.Username
	}
	name := u.FirstName
	if u.LastName != nil && *u.LastName != "" {
		name += " " + *u.LastName
	}
	return name
}
