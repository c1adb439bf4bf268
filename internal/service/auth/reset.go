package auth

import (
	"context"
	"strings"
)

// ResetPassword acknowledges a reset request. Nothing is sent and no
// state changes; the operation succeeds for any well-formed address so
// callers cannot probe which emails have accounts.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "password reset requested")
	return nil
}
