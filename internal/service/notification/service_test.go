package notification_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/mocks"
	"wishlist-backend/internal/service/notification"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestNotificationService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(mockNotifRepo, nil, nil, nil, newTestLogger(), true)

		wishID := int64(5)
		mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == 200 && n.ActorID == 100 &&
				n.Type == domain.NotifWishCreated && n.ObjectID != nil && *n.ObjectID == wishID
		})).Return(nil).Once()

		notif, err := svc.Append(ctx, 200, 100, domain.NotifWishCreated, &wishID)

		assert.NoError(t, err)
		assert.NotEqual(t, "", notif.ID.String())
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(mockNotifRepo, nil, nil, nil, newTestLogger(), true)

		notif, err := svc.Append(ctx, 200, 100, domain.NotificationType("bogus"), nil)

		assert.ErrorIs(t, err, notification.ErrUnknownType)
		assert.Nil(t, notif)
		mockNotifRepo.AssertNotCalled(t, "Create")
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	userID := int64(100)

	t.Run("Default Limit", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(mockNotifRepo, nil, nil, nil, newTestLogger(), true)

		mockNotifRepo.On("ListByUser", ctx, userID, 50).Return([]domain.Notification{}, nil).Once()

		_, err := svc.List(ctx, userID, 0)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(mockNotifRepo, nil, nil, nil, newTestLogger(), true)

		mockNotifRepo.On("ListByUser", ctx, userID, 10).Return([]domain.Notification{}, nil).Once()

		_, err := svc.List(ctx, userID, 10)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Limit Capped", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := notification.NewService(mockNotifRepo, nil, nil, nil, newTestLogger(), true)

		mockNotifRepo.On("ListByUser", ctx, userID, 100).Return([]domain.Notification{}, nil).Once()

		_, err := svc.List(ctx, userID, 5000)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})
}

func TestNotificationService_NotifyWishCreated(t *testing.T) {
	ownerID := int64(100)
	wishID := int64(5)
	owner := &domain.User{ID: ownerID, FirstName: "Alice"}

	t.Run("Fans Out To Friends", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockFriendRepo := new(mocks.FriendshipRepository)
		mockSender := new(mocks.Sender)
		svc := notification.NewService(mockNotifRepo, mockUserRepo, mockFriendRepo, mockSender, newTestLogger(), true)

		friends := []domain.User{{ID: 200}, {ID: 300}}
		mockUserRepo.On("GetByID", mock.Anything, ownerID).Return(owner, nil).Once()
		mockFriendRepo.On("ListFriends", mock.Anything, ownerID).Return(friends, nil).Once()
		mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return (n.UserID == 200 || n.UserID == 300) && n.Type == domain.NotifWishCreated
		})).Return(nil).Twice()
		mockSender.On("Send", mock.Anything, int64(200), mock.AnythingOfType("string")).Return(nil).Once()
		mockSender.On("Send", mock.Anything, int64(300), mock.AnythingOfType("string")).Return(nil).Once()

		svc.NotifyWishCreated(ownerID, wishID)

		mockNotifRepo.AssertExpectations(t)
		mockSender.AssertExpectations(t)
	})

	t.Run("Owner Only Policy", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockFriendRepo := new(mocks.FriendshipRepository)
		svc := notification.NewService(mockNotifRepo, mockUserRepo, mockFriendRepo, nil, newTestLogger(), false)

		mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == ownerID && n.ActorID == ownerID && n.Type == domain.NotifWishCreated
		})).Return(nil).Once()

		svc.NotifyWishCreated(ownerID, wishID)

		mockNotifRepo.AssertExpectations(t)
		mockFriendRepo.AssertNotCalled(t, "ListFriends")
	})
}

func TestNotificationService_NotifyFriendRequest(t *testing.T) {
	requesterID := int64(100)
	recipientID := int64(200)
	requester := &domain.User{ID: requesterID, FirstName: "Alice"}

	mockNotifRepo := new(mocks.NotificationRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.Sender)
	svc := notification.NewService(mockNotifRepo, mockUserRepo, nil, mockSender, newTestLogger(), true)

	mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == recipientID && n.ActorID == requesterID && n.Type == domain.NotifFriendRequest
	})).Return(nil).Once()
	mockUserRepo.On("GetByID", mock.Anything, requesterID).Return(requester, nil).Once()
	mockSender.On("Send", mock.Anything, recipientID, mock.AnythingOfType("string")).Return(nil).Once()

	svc.NotifyFriendRequest(requesterID, recipientID)

	mockNotifRepo.AssertExpectations(t)
	mockSender.AssertExpectations(t)
}

func TestNotificationService_NotifyFriendAccepted(t *testing.T) {
	requesterID := int64(100)
	recipientID := int64(200)
	recipient := &domain.User{ID: recipientID, FirstName: "Bob"}

	mockNotifRepo := new(mocks.NotificationRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockSender := new(mocks.Sender)
	svc := notification.NewService(mockNotifRepo, mockUserRepo, nil, mockSender, newTestLogger(), true)

	mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == requesterID && n.ActorID == recipientID && n.Type == domain.NotifFriendAccepted
	})).Return(nil).Once()
	mockUserRepo.On("GetByID", mock.Anything, recipientID).Return(recipient, nil).Once()
	mockSender.On("Send", mock.Anything, requesterID, mock.AnythingOfType("string")).Return(nil).Once()

	svc.NotifyFriendAccepted(requesterID, recipientID)

	mockNotifRepo.AssertExpectations(t)
	mockSender.AssertExpectations(t)
}
