package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"wishlist-backend/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, actor_id, type, object_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING sent_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.ActorID, notif.Type, notif.ObjectID,
	).Scan(&notif.SentAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY sent_at DESC
		LIMIT $2`

	var notifications []domain.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID, limit)
	return notifications, err
}
