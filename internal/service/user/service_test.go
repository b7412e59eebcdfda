package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/mocks"
	"wishlist-backend/internal/service/user"
)

func TestUserService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		svc := user.NewService(mockRepo)

		username := "alice"
		mockRepo.On("Upsert", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 42 && u.FirstName == "Alice" && u.Username != nil && *u.Username == username
		})).Return(nil).Once()

		u, err := svc.Upsert(ctx, domain.UpsertUserInput{
			ID:        42,
			FirstName: "Alice",
			Username:  &username,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), u.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing First Name", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		svc := user.NewService(mockRepo)

		u, err := svc.Upsert(ctx, domain.UpsertUserInput{ID: 42})

		assert.ErrorIs(t, err, user.ErrMissingFirstName)
		assert.Nil(t, u)
		mockRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		svc := user.NewService(mockRepo)

		mockRepo.On("GetByID", ctx, int64(42)).Return(&domain.User{ID: 42, FirstName: "Alice"}, nil).Once()

		u, err := svc.GetByID(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", u.FirstName)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		svc := user.NewService(mockRepo)

		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, nil).Once()

		u, err := svc.GetByID(ctx, 42)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, u)
	})
}
