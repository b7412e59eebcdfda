package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Wish         WishRepository
	Friendship   FriendshipRepository
	Gift         GiftRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Wish:         NewWishRepository(db),
		Friendship:   NewFriendshipRepository(db),
		Gift:         NewGiftRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
