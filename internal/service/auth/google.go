package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// The demo Google flow does not talk to Google; it signs in a fixed
// identity.
const (
	googleUserName  = "Google User"
	googleUserEmail = "google.user@example.com"
)

// GoogleSignIn opens a session for the canned Google identity, creating
// the account on first use.
func (s *Service) GoogleSignIn(ctx context.Context) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, googleUserEmail)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.createUser(ctx, googleUserName, googleUserEmail, nil)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				user, err = s.users.GetByEmail(ctx, googleUserEmail)
			}
			if err != nil {
				return nil, fmt.Errorf("auth.GoogleSignIn create user: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("auth.GoogleSignIn get user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.GoogleSignIn issue tokens: %w", err)
	}
	return result, nil
}
