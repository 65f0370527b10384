package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/legends-backend/internal/config"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64) (string, time.Time, error)
	ValidateAccessToken(token string) (int64, error)
}

// Service implements registration, login and access token resolution.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// issueToken signs an access token for user and wraps it into an AuthResult.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
