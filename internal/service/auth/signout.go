package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// SignOut ends every session of the given user by revoking all of their
// refresh tokens. Access tokens simply run out.
func (s *Service) SignOut(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "user signed out",
		slog.String("user_id", userID.String()))

	return nil
}
