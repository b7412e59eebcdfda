package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/repository"
)

var ErrUnknownType = errors.New("unknown notification type")

// sideEffectTimeout bounds the store and transport calls made by the
// Notify* entry points, which run outside the request that triggered them.
const sideEffectTimeout = 5 * time.Second

const defaultListLimit = 50
const maxListLimit = 100

// Sender is the outbound-message collaborator. Delivery is best-effort:
// errors are logged here and never reach the operation that caused the
// notification.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type Service interface {
	Append(ctx context.Context, recipientID, actorID int64, typ domain.NotificationType, objectID *int64) (*domain.Notification, error)
	List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)

	// Side-effect entry points. Each runs on its own bounded background
	// context, logs failures, and never returns them to the caller.
	NotifyWishCreated(ownerID, wishID int64)
	NotifyFriendRequest(requesterID, recipientID int64)
	NotifyFriendAccepted(requesterID, recipientID int64)
}

type service struct {
	notifRepo  repository.NotificationRepository
	userRepo   repository.UserRepository
	friendRepo repository.FriendshipRepository
	sender     Sender
	logger     *logrus.Logger

	// notifyFriends selects the wish_created recipient policy: the owner's
	// friends when true, the owner itself when false (the original
	// backend's observed behavior).
	notifyFriends bool
}

func NewService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	friendRepo repository.FriendshipRepository,
	sender Sender,
	logger *logrus.Logger,
	notifyFriends bool,
) Service {
	return &service{
		notifRepo:     notifRepo,
		userRepo:      userRepo,
		friendRepo:    friendRepo,
		sender:        sender,
		logger:        logger,
		notifyFriends: notifyFriends,
	}
}

func (s *service) Append(ctx context.Context, recipientID, actorID int64, typ domain.NotificationType, objectID *int64) (*domain.Notification, error) {
	if !typ.IsValid() {
		return nil, ErrUnknownType
	}

	notif := &domain.Notification{
		ID:       uuid.New(),
		UserID:   recipientID,
		ActorID:  actorID,
		Type:     typ,
		ObjectID: objectID,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}
	return notif, nil
}

func (s *service) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.notifRepo.ListByUser(ctx, userID, limit)
}

func (s *service) NotifyWishCreated(ownerID, wishID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if !s.notifyFriends {
		if _, err := s.Append(ctx, ownerID, ownerID, domain.NotifWishCreated, &wishID); err != nil {
			s.logger.WithError(err).WithField("wish_id", wishID).Warn("failed to append wish_created notification")
		}
		return
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil || owner == nil {
		s.logger.WithError(err).WithField("user_id", ownerID).Warn("failed to load owner for wish_created fanout")
		return
	}

	friends, err := s.friendRepo.ListFriends(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", ownerID).Warn("failed to list friends for wish_created fanout")
		return
	}

	text := fmt.Sprintf("\U0001F381 %s added a new wish", owner.DisplayName())
	for _, friend := range friends {
		if _, err := s.Append(ctx, friend.ID, ownerID, domain.NotifWishCreated, &wishID); err != nil {
			s.logger.WithError(err).WithField("user_id", friend.ID).Warn("failed to append wish_created notification")
			continue
		}
		s.send(ctx, friend.ID, text)
	}
}

func (s *service) NotifyFriendRequest(requesterID, recipientID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if _, err := s.Append(ctx, recipientID, requesterID, domain.NotifFriendRequest, nil); err != nil {
		s.logger.WithError(err).WithField("user_id", recipientID).Warn("failed to append friend_request notification")
		return
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil || requester == nil {
		s.logger.WithError(err).WithField("user_id", requesterID).Warn("failed to load requester profile")
		return
	}

	s.send(ctx, recipientID, fmt.Sprintf("\U0001F91D %s sent you a friend request", requester.DisplayName()))
}

func (s *service) NotifyFriendAccepted(requesterID, recipientID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if _, err := s.Append(ctx, requesterID, recipientID, domain.NotifFriendAccepted, nil); err != nil {
		s.logger.WithError(err).WithField("user_id", requesterID).Warn("failed to append friend_accepted notification")
		return
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil || recipient == nil {
		s.logger.WithError(err).WithField("user_id", recipientID).Warn("failed to load recipient profile")
		return
	}

	s.send(ctx, requesterID, fmt.Sprintf("✅ %s accepted your friend request", recipient.DisplayName()))
}

func (s *service) send(ctx context.Context, chatID int64, text string) {
	if s.sender == nil {
		return
	}
	if err := s.sender.Send(ctx, chatID, text); err != nil {
		s.logger.WithError(err).WithField("chat_id", chatID).Warn("failed to deliver telegram message")
	}
}
