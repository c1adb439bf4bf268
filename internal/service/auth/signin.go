package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// SignIn opens a session for the given email. The password is ignored:
// any credentials with a well-formed address succeed. If no account
// exists yet, one is created with the address's local part as the
// display name.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		name := input.Email[:strings.Index(input.Email, "@")]
		user, err = s.createUser(ctx, name, input.Email, nil)
		if err != nil {
			// A concurrent sign-in may have created the account; re-read.
			if errors.Is(err, domain.ErrAlreadyExists) {
				user, err = s.users.GetByEmail(ctx, input.Email)
			}
			if err != nil {
				return nil, fmt.Errorf("auth.SignIn create user: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
