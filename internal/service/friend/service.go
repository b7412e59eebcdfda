package friend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/repository"
	"wishlist-backend/internal/service/notification"
)

var (
	ErrSelfFriendRequest      = errors.New("cannot send a friend request to yourself")
	ErrDuplicateFriendRequest = errors.New("friend request already exists between these users")
	ErrFriendRequestNotFound  = errors.New("no pending friend request from this user")
	ErrRecipientNotFound      = errors.New("recipient user not found")
)

const friendsCacheTTL = 5 * time.Minute

type Service interface {
	SendRequest(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error)
	AcceptRequest(ctx context.Context, recipientID, requesterID int64) (*domain.Friendship, error)
	ListFriends(ctx context.Context, userID int64) ([]domain.User, error)
	ListPending(ctx context.Context, userID int64) ([]domain.PendingRequest, error)
}

type service struct {
	friendRepo repository.FriendshipRepository
	userRepo   repository.UserRepository
	redis      *redis.Client
	notifSvc   notification.Service
}

func NewService(
	friendRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	redis *redis.Client,
	notifSvc notification.Service,
) Service {
	return &service{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		redis:      redis,
		notifSvc:   notifSvc,
	}
}

// SendRequest records a pending edge from requester to recipient. An edge
// in either direction, whatever its status, blocks a new request.
func (s *service) SendRequest(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error) {
	if requesterID == recipientID {
		return nil, ErrSelfFriendRequest
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	existing, err := s.friendRepo.GetByPair(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = s.friendRepo.GetByPair(ctx, recipientID, requesterID)
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, ErrDuplicateFriendRequest
	}

	edge := &domain.Friendship{
		UserID:   requesterID,
		FriendID: recipientID,
		Status:   domain.FriendshipPending,
	}
	if err := s.friendRepo.Create(ctx, edge); err != nil {
		// The unique constraint on (user_id, friend_id) backstops the
		// pre-read under concurrent requests.
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrDuplicateFriendRequest
		}
		return nil, err
	}

	if s.notifSvc != nil {
		go s.notifSvc.NotifyFriendRequest(requesterID, recipientID)
	}

	return edge, nil
}

// AcceptRequest promotes the pending edge keyed by the original request
// direction: the requester created it, the recipient accepts it.
func (s *service) AcceptRequest(ctx context.Context, recipientID, requesterID int64) (*domain.Friendship, error) {
	edge, err := s.friendRepo.Accept(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if edge == nil {
		return nil, ErrFriendRequestNotFound
	}

	s.invalidateFriendsCache(ctx, requesterID)
	s.invalidateFriendsCache(ctx, recipientID)

	if s.notifSvc != nil {
		go s.notifSvc.NotifyFriendAccepted(requesterID, recipientID)
	}

	return edge, nil
}

func (s *service) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	cacheKey := friendsCacheKey(userID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var friends []domain.User
			if json.Unmarshal([]byte(cached), &friends) == nil {
				return friends, nil
			}
		}
	}

	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(friends); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, friendsCacheTTL).Err()
		}
	}

	return friends, nil
}

func (s *service) ListPending(ctx context.Context, userID int64) ([]domain.PendingRequest, error) {
	return s.friendRepo.ListPending(ctx, userID)
}

func (s *service) invalidateFriendsCache(ctx context.Context, userID int64) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, friendsCacheKey(userID)).Err()
	}
}

func friendsCacheKey(userID int64) string {
	return fmt.Sprintf("friends:%d", userID)
}
