package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an append-only record of a social event. Rows are never
// mutated or deleted; the feed is read newest-first with a limit.
type Notification struct {
	ID       uuid.UUID        `json:"id" db:"id"`
	UserID   int64            `json:"user_id" db:"user_id"`
	ActorID  int64            `json:"actor_id" db:"actor_id"`
	Type     NotificationType `json:"type" db:"type"`
	ObjectID *int64           `json:"object_id,omitempty" db:"object_id"`
	SentAt   time.Time        `json:"sent_at" db:"sent_at"`
}

type NotificationType string

const (
	NotifWishCreated    NotificationType = "wish_created"
	NotifFriendRequest  NotificationType = "friend_request"
	NotifFriendAccepted NotificationType = "friend_accepted"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifWishCreated, NotifFriendRequest, NotifFriendAccepted:
		return true
	}
	return false
}
