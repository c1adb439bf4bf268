package auth

import (
	"regexp"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// emailRx is a loose shape check, not RFC validation.
var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignUpInput holds parameters for the sign-up operation.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = append(errs, validateEmail(i.Email)...)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates beyond 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for the sign-in operation.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input. The password is accepted as-is;
// only the email shape matters.
func (i SignInInput) Validate() error {
	errs := validateEmail(i.Email)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds parameters for the password reset operation.
type ResetPasswordInput struct {
	Email string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	errs := validateEmail(i.Email)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > 320 || !emailRx.MatchString(email) {
		return []domain.FieldError{{Field: "email", Message: "invalid email address"}}
	}
	return nil
}
