package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wishlist-backend/internal/config"
	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/mocks"
	"wishlist-backend/internal/pkg/initdata"
	"wishlist-backend/internal/service/auth"
	"wishlist-backend/internal/service/user"
)

type stubVerifier struct {
	user *initdata.User
	err  error
}

func (s *stubVerifier) Verify(raw string) (*initdata.User, error) {
	return s.user, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		verifier := &stubVerifier{user: &initdata.User{
			ID:        42,
			FirstName: "Alice",
			Username:  "alice",
		}}
		svc := auth.NewService(verifier, user.NewService(mockUserRepo), testConfig())

		mockUserRepo.On("Upsert", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 42 && u.FirstName == "Alice" &&
				u.Username != nil && *u.Username == "alice"
		})).Return(nil).Once()

		verified, token, err := svc.Verify(ctx, "raw-init-data")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), verified.ID)
		assert.NotEmpty(t, token)
		mockUserRepo.AssertExpectations(t)

		claims, err := svc.ValidateAccessToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
	})

	t.Run("Invalid Init Data", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		verifier := &stubVerifier{err: errors.New("bad signature")}
		svc := auth.NewService(verifier, user.NewService(mockUserRepo), testConfig())

		verified, token, err := svc.Verify(ctx, "tampered")

		assert.ErrorIs(t, err, auth.ErrInvalidInitData)
		assert.Nil(t, verified)
		assert.Empty(t, token)
		mockUserRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	svc := auth.NewService(&stubVerifier{}, user.NewService(mockUserRepo), testConfig())

	t.Run("Garbage Token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecret = "other-secret"
		otherSvc := auth.NewService(&stubVerifier{user: &initdata.User{ID: 1, FirstName: "A"}}, user.NewService(mockUserRepo), otherCfg)

		mockUserRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
		_, token, err := otherSvc.Verify(context.Background(), "raw")
		assert.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestAuthService_GetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(&stubVerifier{}, user.NewService(mockUserRepo), testConfig())

		mockUserRepo.On("GetByID", ctx, int64(42)).Return(&domain.User{ID: 42, FirstName: "Alice"}, nil).Once()

		u, err := svc.GetUserByID(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), u.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(&stubVerifier{}, user.NewService(mockUserRepo), testConfig())

		mockUserRepo.On("GetByID", ctx, int64(42)).Return(nil, nil).Once()

		u, err := svc.GetUserByID(ctx, 42)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, u)
	})
}
