package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/domain"
)

type FriendshipRepository struct {
	mock.Mock
}

func (m *FriendshipRepository) Create(ctx context.Context, edge *domain.Friendship) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

func (m *FriendshipRepository) GetByPair(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error) {
	args := m.Called(ctx, requesterID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *FriendshipRepository) Accept(ctx context.Context, requesterID, recipientID int64) (*domain.Friendship, error) {
	args := m.Called(ctx, requesterID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *FriendshipRepository) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *FriendshipRepository) ListPending(ctx context.Context, userID int64) ([]domain.PendingRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingRequest), args.Error(1)
}
