package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) Append(ctx context.Context, recipientID, actorID int64, typ domain.NotificationType, objectID *int64) (*domain.Notification, error) {
	args := m.Called(ctx, recipientID, actorID, typ, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) NotifyWishCreated(ownerID, wishID int64) {
	m.Called(ownerID, wishID)
}

func (m *NotificationService) NotifyFriendRequest(requesterID, recipientID int64) {
	m.Called(requesterID, recipientID)
}

func (m *NotificationService) NotifyFriendAccepted(requesterID, recipientID int64) {
	m.Called(requesterID, recipientID)
}
