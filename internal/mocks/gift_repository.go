package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/domain"
)

type GiftRepository struct {
	mock.Mock
}

func (m *GiftRepository) Create(ctx context.Context, gift *domain.Gift) (bool, error) {
	args := m.Called(ctx, gift)
	return args.Bool(0), args.Error(1)
}

func (m *GiftRepository) GetByPair(ctx context.Context, wishID, giverID int64) (*domain.Gift, error) {
	args := m.Called(ctx, wishID, giverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gift), args.Error(1)
}

func (m *GiftRepository) Delete(ctx context.Context, wishID, giverID int64) error {
	args := m.Called(ctx, wishID, giverID)
	return args.Error(0)
}

func (m *GiftRepository) ListGifters(ctx context.Context, wishID int64) ([]domain.Gifter, error) {
	args := m.Called(ctx, wishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gifter), args.Error(1)
}
