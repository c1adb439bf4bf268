package auth

import "github.com/panacureo/panacureo-backend/internal/domain"

// AuthResult is returned by every operation that establishes a session.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
