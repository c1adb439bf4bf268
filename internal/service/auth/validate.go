package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// ValidateToken verifies an access token and returns the user id it was
// issued for. All verification failures collapse to ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CurrentUser loads the user for a validated session.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
