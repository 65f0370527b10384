package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// ValidateToken resolves an access token to the id of a user that still exists.
// Any invalid token or unknown user yields ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (int64, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", "error", err)
		return 0, domain.ErrUnauthorized
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}

	return userID, nil
}
