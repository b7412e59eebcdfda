package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wishlist-backend/internal/config"
	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/pkg/initdata"
	"wishlist-backend/internal/service/user"
)

var (
	ErrInvalidInitData = errors.New("invalid or unverifiable init data")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// InitDataVerifier is the pluggable identity-payload verification step.
type InitDataVerifier interface {
	Verify(raw string) (*initdata.User, error)
}

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Service interface {
	// Verify validates the platform payload, upserts the profile, and
	// issues an access token for the verified identity.
	Verify(ctx context.Context, rawInitData string) (*domain.User, string, error)
	ValidateAccessToken(token string) (*Claims, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type service struct {
	verifier InitDataVerifier
	userSvc  user.Service
	cfg      *config.Config
}

func NewService(verifier InitDataVerifier, userSvc user.Service, cfg *config.Config) Service {
	return &service{
		verifier: verifier,
		userSvc:  userSvc,
		cfg:      cfg,
	}
}

func (s *service) Verify(ctx context.Context, rawInitData string) (*domain.User, string, error) {
	profile, err := s.verifier.Verify(rawInitData)
	if err != nil {
		return nil, "", ErrInvalidInitData
	}

	input := domain.UpsertUserInput{
		ID:        profile.ID,
		FirstName: profile.FirstName,
	}
	if profile.Username != "" {
		input.Username = &profile.Username
	}
	if profile.LastName != "" {
		input.LastName = &profile.LastName
	}
	if profile.PhotoURL != "" {
		input.PhotoURL = &profile.PhotoURL
	}

	persisted, err := s.userSvc.Upsert(ctx, input)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateAccessToken(persisted)
	if err != nil {
		return nil, "", err
	}

	return persisted, token, nil
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *service) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userSvc.GetByID(ctx, id)
}

func (s *service) generateAccessToken(u *domain.User) (string, error) {
	claims := &Claims{
		UserID: u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWTAccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(u.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
