package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"wishlist-backend/internal/domain"
)

type FriendshipRepository interface {
	Create(ctx context.Context, edge *domain.Friendship) error
	GetByPair(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error)
	Accept(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error)
	ListFriends(ctx context.Context, userID int64) ([]domain.User, error)
	ListPending(ctx context.Context, userID int64) ([]domain.PendingRequest, error)
}

type friendshipRepository struct {
	db *sqlx.DB
}

func NewFriendshipRepository(db *sqlx.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, edge *domain.Friendship) error {
	query := `
		INSERT INTO friends (user_id, friend_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, invited_at`

	return r.db.QueryRowxContext(ctx, query,
		edge.UserID, edge.FriendID, edge.Status,
	).Scan(&edge.ID, &edge.InvitedAt)
}

func (r *friendshipRepository) GetByPair(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error) {
	var edge domain.Friendship
	query := `SELECT * FROM friends WHERE user_id = $1 AND friend_id = $2`

	err := r.db.GetContext(ctx, &edge, query, requesterID, recipientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// Accept promotes the pending edge matching the exact (requester,
// recipient) pair. Returns nil when no pending edge matches.
func (r *friendshipRepository) Accept(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error) {
	var edge domain.Friendship
	query := `
		UPDATE friends
		SET status = $3, accepted_at = NOW()
		WHERE user_id = $1 AND friend_id = $2 AND status = $4
		RETURNING *`

	err := r.db.GetContext(ctx, &edge, query,
		requesterID, recipientID, domain.FriendshipAccepted, domain.FriendshipPending)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// ListFriends resolves the other party of every accepted edge touching
// userID. The edge is directed but friendship is symmetric once accepted,
// so both directions are unioned.
func (r *friendshipRepository) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.photo_url, u.created_at, u.updated_at
		FROM friends f
		JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
		WHERE (f.user_id = $1 OR f.friend_id = $1) AND f.status = $2
		ORDER BY f.accepted_at DESC`

	var friends []domain.User
	err := r.db.SelectContext(ctx, &friends, query, userID, domain.FriendshipAccepted)
	return friends, err
}

func (r *friendshipRepository) ListPending(ctx context.Context, userID int64) ([]domain.PendingRequest, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.photo_url, u.created_at, u.updated_at, f.invited_at
		FROM friends f
		JOIN users u ON u.id = f.user_id
		WHERE f.friend_id = $1 AND f.status = $2
		ORDER BY f.invited_at DESC`

	rows, err := r.db.QueryxContext(ctx, query, userID, domain.FriendshipPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PendingRequest
	for rows.Next() {
		var (
			req       domain.PendingRequest
			invitedAt time.Time
		)
		if err := rows.Scan(
			&req.Requester.ID, &req.Requester.Username, &req.Requester.FirstName,
			&req.Requester.LastName, &req.Requester.PhotoURL,
			&req.Requester.CreatedAt, &req.Requester.UpdatedAt,
			&invitedAt,
		); err != nil {
			return nil, err
		}
		req.InvitedAt = invitedAt
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
