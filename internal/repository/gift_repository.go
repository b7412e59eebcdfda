package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"wishlist-backend/internal/domain"
)

type GiftRepository interface {
	Create(ctx context.Context, gift *domain.Gift) (created bool, err error)
	GetByPair(ctx context.Context, wishID, giverID int64) (*domain.Gift, error)
	Delete(ctx context.Context, wishID, giverID int64) error
	ListGifters(ctx context.Context, wishID int64) ([]domain.Gifter, error)
}

type giftRepository struct {
	db *sqlx.DB
}

func NewGiftRepository(db *sqlx.DB) GiftRepository {
	return &giftRepository{db: db}
}

// Create inserts the claim unless the (wish, giver) pair already exists.
// The unique constraint makes concurrent double-marks converge on a single
// row; created reports whether this call inserted it.
func (r *giftRepository) Create(ctx context.Context, gift *domain.Gift) (bool, error) {
	query := `
		INSERT INTO gifts (wish_id, giver_id)
		VALUES ($1, $2)
		ON CONFLICT (wish_id, giver_id) DO NOTHING
		RETURNING id, marked_at`

	err := r.db.QueryRowxContext(ctx, query, gift.WishID, gift.GiverID).
		Scan(&gift.ID, &gift.MarkedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *giftRepository) GetByPair(ctx context.Context, wishID, giverID int64) (*domain.Gift, error) {
	var gift domain.Gift
	query := `SELECT * FROM gifts WHERE wish_id = $1 AND giver_id = $2`

	err := r.db.GetContext(ctx, &gift, query, wishID, giverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gift, nil
}

func (r *giftRepository) Delete(ctx context.Context, wishID, giverID int64) error {
	query := `DELETE FROM gifts WHERE wish_id = $1 AND giver_id = $2`
	_, err := r.db.ExecContext(ctx, query, wishID, giverID)
	return err
}

func (r *giftRepository) ListGifters(ctx context.Context, wishID int64) ([]domain.Gifter, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.photo_url, u.created_at, u.updated_at, g.marked_at
		FROM gifts g
		JOIN users u ON u.id = g.giver_id
		WHERE g.wish_id = $1
		ORDER BY g.marked_at ASC`

	rows, err := r.db.QueryxContext(ctx, query, wishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gifters []domain.Gifter
	for rows.Next() {
		var gifter domain.Gifter
		if err := rows.Scan(
			&gifter.Giver.ID, &gifter.Giver.Username, &gifter.Giver.FirstName,
			&gifter.Giver.LastName, &gifter.Giver.PhotoURL,
			&gifter.Giver.CreatedAt, &gifter.Giver.UpdatedAt,
			&gifter.MarkedAt,
		); err != nil {
			return nil, err
		}
		gifters = append(gifters, gifter)
	}

	return gifters, rows.Err()
}
