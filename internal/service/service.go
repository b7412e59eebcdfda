package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"wishlist-backend/internal/config"
	"wishlist-backend/internal/pkg/initdata"
	"wishlist-backend/internal/repository"
	"wishlist-backend/internal/service/auth"
	"wishlist-backend/internal/service/friend"
	"wishlist-backend/internal/service/gift"
	"wishlist-backend/internal/service/notification"
	"wishlist-backend/internal/service/photo"
	"wishlist-backend/internal/service/telegram"
	"wishlist-backend/internal/service/user"
	"wishlist-backend/internal/service/wish"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Wish         wish.Service
	Friend       friend.Service
	Gift         gift.Service
	Photo        photo.Service
	Notification notification.Service
	Bot          *telegram.Bot
}

func NewServices(
	repos *repository.Repositories,
	redis *redis.Client,
	minioClient *minio.Client,
	bot *telegram.Bot,
	cfg *config.Config,
	logger *logrus.Logger,
) *Services {
	// A nil bot (token missing or Telegram unreachable) leaves the sender
	// unset so the in-app feed keeps working without outbound delivery.
	var sender notification.Sender
	if bot != nil {
		sender = bot
	}

	notificationService := notification.NewService(
		repos.Notification, repos.User, repos.Friendship,
		sender, logger, cfg.WishNotifyFriends,
	)

	userService := user.NewService(repos.User)
	verifier := initdata.NewVerifier(cfg.BotToken, cfg.SkipInitDataSignature)
	authService := auth.NewService(verifier, userService, cfg)
	wishService := wish.NewService(repos.Wish, redis, notificationService)
	friendService := friend.NewService(repos.Friendship, repos.User, redis, notificationService)
	giftService := gift.NewService(repos.Gift, repos.Wish)
	photoService := photo.NewService(minioClient, cfg)

	return &Services{
		Auth:         authService,
		User:         userService,
		Wish:         wishService,
		Friend:       friendService,
		Gift:         giftService,
		Photo:        photoService,
		Notification: notificationService,
		Bot:          bot,
	}
}
