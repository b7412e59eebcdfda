package handler

import (
	"github.com/sirupsen/logrus"

	"wishlist-backend/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Wish         *WishHandler
	Friend       *FriendHandler
	Gift         *GiftHandler
	Notification *NotificationHandler
	Bot          *BotHandler
}

func NewHandlers(services *service.Services, logger *logrus.Logger) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Wish:         NewWishHandler(services.Wish, services.Photo),
		Friend:       NewFriendHandler(services.Friend),
		Gift:         NewGiftHandler(services.Gift),
		Notification: NewNotificationHandler(services.Notification),
		Bot:          NewBotHandler(services.Bot, logger),
	}
}
