package wish

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
	ErrEmptyTitle    = errors.New("wish title is required")
	ErrNegativePrice = errors.New("wish price cannot be negative")
	ErrNotWishOwner  = errors.New("only the wish owner may modify it")
)

const listCacheTTL = 5 * time.Minute

type Service interface {
	Create(ctx context.Context, ownerID int64, input domain.CreateWishInput) (*domain.Wish, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wish, error)
	Update(ctx context.Context, wishID, actorID int64, input domain.UpdateWishInput) (*domain.Wish, error)
	Delete(ctx context.Context, wishID, actorID int64) error
}

type service struct {
	wishRepo repository.WishRepository
	redis    *redis.Client
	notifSvc notification.Service
}

func NewService(wishRepo repository.WishRepository, redis *redis.Client, notifSvc notification.Service) Service {
	return &service{
		wishRepo: wishRepo,
		redis:    redis,
		notifSvc: notifSvc,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, input domain.CreateWishInput) (*domain.Wish, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrNegativePrice
	}

	wish := &domain.Wish{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		PhotoURL:    input.PhotoURL,
		Link:        input.Link,
		Price:       input.Price,
		Status:      domain.WishStatusActive,
	}

	if err := s.wishRepo.Create(ctx, wish); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx, ownerID)

	if s.notifSvc != nil {
		go s.notifSvc.NotifyWishCreated(ownerID, wish.ID)
	}

	return wish, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wish, error) {
	cacheKey := listCacheKey(ownerID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var wishes []domain.Wish
			if json.Unmarshal([]byte(cached), &wishes) == nil {
				return wishes, nil
			}
		}
	}

	wishes, err := s.wishRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(wishes); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, listCacheTTL).Err()
		}
	}

	return wishes, nil
}

// Update applies the patch after an explicit ownership check: a mismatch
// is an authorization failure, not a silent no-op.
func (s *service) Update(ctx context.Context, wishID, actorID int64, input domain.UpdateWishInput) (*domain.Wish, error) {
	wish, err := s.wishRepo.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, domain.ErrWishNotFound
	}
	if wish.UserID != actorID {
		return nil, ErrNotWishOwner
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrEmptyTitle
		}
		wish.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		wish.Description = input.Description
	}
	if input.PhotoURL != nil {
		wish.PhotoURL = input.PhotoURL
	}
	if input.Link != nil {
		wish.Link = input.Link
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ErrNegativePrice
		}
		wish.Price = input.Price
	}

	if err := s.wishRepo.Update(ctx, wish); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx, wish.UserID)

	return wish, nil
}

func (s *service) Delete(ctx context.Context, wishID, actorID int64) error {
	wish, err := s.wishRepo.GetByID(ctx, wishID)
	if err != nil {
		return err
	}
	if wish == nil {
		return domain.ErrWishNotFound
	}
	if wish.UserID != actorID {
		return ErrNotWishOwner
	}

	if err := s.wishRepo.SoftDelete(ctx, wishID); err != nil {
		return err
	}

	s.invalidateListCache(ctx, wish.UserID)

	return nil
}

func (s *service) invalidateListCache(ctx context.Context, ownerID int64) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, listCacheKey(ownerID)).Err()
	}
}

func listCacheKey(ownerID int64) string {
	return fmt.Sprintf("wishes:%d", ownerID)
}
