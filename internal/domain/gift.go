package domain

import "time"

// Gift records that a giver has claimed a wish. One claim per
// (wish, giver) pair; claims are created and deleted, never updated.
type Gift struct {
	ID       int64     `json:"id" db:"id"`
	WishID   int64     `json:"wish_id" db:"wish_id"`
	GiverID  int64     `json:"giver_id" db:"giver_id"`
	MarkedAt time.Time `json:"marked_at" db:"marked_at"`
}

// Gifter is the per-wish view of a claim with the giver's profile attached.
type Gifter struct {
	Giver    User      `json:"giver"`
	MarkedAt time.Time `json:"marked_at"`
}
