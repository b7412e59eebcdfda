package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/domain"
)

type WishRepository struct {
	mock.Mock
}

func (m *WishRepository) Create(ctx context.Context, wish *domain.Wish) error {
	args := m.Called(ctx, wish)
	return args.Error(0)
}

func (m *WishRepository) GetByID(ctx context.Context, id int64) (*domain.Wish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *WishRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wish, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wish), args.Error(1)
}

func (m *WishRepository) Update(ctx context.Context, wish *domain.Wish) error {
	args := m.Called(ctx, wish)
	return args.Error(0)
}

func (m *WishRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
