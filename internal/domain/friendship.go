package domain

import "time"

// Friendship is a single directed edge from the requester (UserID) to the
// recipient (FriendID). Friendship is symmetric once accepted, but it is
// stored as one row: the friends and pending views are derived by querying
// both directions, never by duplicating rows.
type Friendship struct {
	ID         int64            `json:"id" db:"id"`
	UserID     int64            `json:"user_id" db:"user_id"`
	FriendID   int64            `json:"friend_id" db:"friend_id"`
	Status     FriendshipStatus `json:"status" db:"status"`
	InvitedAt  time.Time        `json:"invited_at" db:"invited_at"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty" db:"accepted_at"`
}

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

func (s FriendshipStatus) IsValid() bool {
	switch s {
	case FriendshipPending, FriendshipAccepted:
		return true
	}
	return false
}

// PendingRequest is the recipient-side view of a pending edge.
type PendingRequest struct {
	Requester User      `json:"requester"`
	InvitedAt time.Time `json:"invited_at"`
}
