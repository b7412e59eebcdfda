package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"wishlist-backend/internal/domain"
)

type WishRepository interface {
	Create(ctx context.Context, wish *domain.Wish) error
	GetByID(ctx context.Context, id int64) (*domain.Wish, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wish, error)
	Update(ctx context.Context, wish *domain.Wish) error
	SoftDelete(ctx context.Context, id int64) error
}

type wishRepository struct {
	db *sqlx.DB
}

func NewWishRepository(db *sqlx.DB) WishRepository {
	return &wishRepository{db: db}
}

func (r *wishRepository) Create(ctx context.Context, wish *domain.Wish) error {
	query := `
		INSERT INTO wishes (user_id, title, description, photo_url, link, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		wish.UserID, wish.Title, wish.Description, wish.PhotoURL,
		wish.Link, wish.Price, wish.Status,
	).Scan(&wish.ID, &wish.CreatedAt, &wish.UpdatedAt)
}

func (r *wishRepository) GetByID(ctx context.Context, id int64) (*domain.Wish, error) {
	var wish domain.Wish
	query := `SELECT * FROM wishes WHERE id = $1 AND status <> $2`

	err := r.db.GetContext(ctx, &wish, query, id, domain.WishStatusDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wish, nil
}

func (r *wishRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wish, error) {
	query := `
		SELECT * FROM wishes
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC`

	var wishes []domain.Wish
	err := r.db.SelectContext(ctx, &wishes, query, ownerID, domain.WishStatusActive)
	return wishes, err
}

func (r *wishRepository) Update(ctx context.Context, wish *domain.Wish) error {
	query := `
		UPDATE wishes
		SET title = $2, description = $3, photo_url = $4, link = $5, price = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		wish.ID, wish.Title, wish.Description, wish.PhotoURL, wish.Link, wish.Price,
	).Scan(&wish.UpdatedAt)
}

func (r *wishRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE wishes SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, domain.WishStatusDeleted)
	return err
}
