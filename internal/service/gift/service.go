package gift

import (
	"context"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/repository"
)

type Service interface {
	Mark(ctx context.Context, wishID, giverID int64) (*domain.Gift, error)
	Unmark(ctx context.Context, wishID, giverID int64) error
	ListGifters(ctx context.Context, wishID int64) ([]domain.Gifter, error)
}

type service struct {
	giftRepo repository.GiftRepository
	wishRepo repository.WishRepository
}

func NewService(giftRepo repository.GiftRepository, wishRepo repository.WishRepository) Service {
	return &service{
		giftRepo: giftRepo,
		wishRepo: wishRepo,
	}
}

// Mark records the giver's claim on the wish. Marking a wish already
// claimed by the same giver returns the existing claim unchanged.
func (s *service) Mark(ctx context.Context, wishID, giverID int64) (*domain.Gift, error) {
	wish, err := s.wishRepo.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, domain.ErrWishNotFound
	}

	gift := &domain.Gift{WishID: wishID, GiverID: giverID}
	created, err := s.giftRepo.Create(ctx, gift)
	if err != nil {
		return nil, err
	}
	if created {
		return gift, nil
	}

	existing, err := s.giftRepo.GetByPair(ctx, wishID, giverID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// Lost a race with a concurrent unmark; retry the insert once.
		if _, err := s.giftRepo.Create(ctx, gift); err != nil {
			return nil, err
		}
		return gift, nil
	}
	return existing, nil
}

// Unmark removes the giver's claim. Removing a claim that does not exist
// succeeds without effect.
func (s *service) Unmark(ctx context.Context, wishID, giverID int64) error {
	wish, err := s.wishRepo.GetByID(ctx, wishID)
	if err != nil {
		return err
	}
	if wish == nil {
		return domain.ErrWishNotFound
	}

	return s.giftRepo.Delete(ctx, wishID, giverID)
}

func (s *service) ListGifters(ctx context.Context, wishID int64) ([]domain.Gifter, error) {
	wish, err := s.wishRepo.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, domain.ErrWishNotFound
	}

	return s.giftRepo.ListGifters(ctx, wishID)
}
