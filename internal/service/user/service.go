package user

import (
	"context"
	"errors"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/repository"
)

var ErrMissingFirstName = errors.New("first name is required")

type Service interface {
	Upsert(ctx context.Context, input domain.UpsertUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

// Upsert creates the user on first login and refreshes the profile fields
// on every subsequent one.
func (s *service) Upsert(ctx context.Context, input domain.UpsertUserInput) (*domain.User, error) {
	if input.FirstName == "" {
		return nil, ErrMissingFirstName
	}

	user := &domain.User{
		ID:        input.ID,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		PhotoURL:  input.PhotoURL,
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
