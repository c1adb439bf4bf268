package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// mockUserRepo is a func-field mock of userRepo.
type mockUserRepo struct {
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	createFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFn(ctx, user)
}

// mockProfileRepo is a func-field mock of profileRepo.
type mockProfileRepo struct {
	createFn func(ctx context.Context, userID uuid.UUID, profile domain.Profile) error
}

func (m *mockProfileRepo) Create(ctx context.Context, userID uuid.UUID, profile domain.Profile) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, userID, profile)
}

// mockTokenRepo is a func-field mock of tokenRepo.
type mockTokenRepo struct {
	createFn          func(ctx context.Context, token *domain.RefreshToken) error
	getByHashFn       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	revokeByIDFn      func(ctx context.Context, id uuid.UUID) error
	revokeAllByUserFn func(ctx context.Context, userID uuid.UUID) error
	deleteExpiredFn   func(ctx context.Context) (int, error)
}

func (m *mockTokenRepo) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, token)
}

func (m *mockTokenRepo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	return m.getByHashFn(ctx, tokenHash)
}

func (m *mockTokenRepo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return m.revokeByIDFn(ctx, id)
}

func (m *mockTokenRepo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return m.revokeAllByUserFn(ctx, userID)
}

func (m *mockTokenRepo) DeleteExpired(ctx context.Context) (int, error) {
	return m.deleteExpiredFn(ctx)
}

// mockTxManager runs the callback directly, no transaction.
type mockTxManager struct{}

func (mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
