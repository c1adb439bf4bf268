package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panacureo/panacureo-backend/internal/adapter/postgres/testhelper"
	"github.com/panacureo/panacureo-backend/internal/adapter/postgres/token"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*token.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return token.New(pool), pool
}

// assertIsDomainError fails the test unless err wraps want.
func assertIsDomainError(t *testing.T, err, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected error wrapping %v, got: %v", want, err)
	}
}

func newToken(userID uuid.UUID, ttl time.Duration) *domain.RefreshToken {
	return &domain.RefreshToken{
		UserID:    userID,
		TokenHash: "testhash-" + uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(ttl).Truncate(time.Microsecond),
	}
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	tok := newToken(user.ID, 24*time.Hour)

	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if tok.ID == uuid.Nil {
		t.Error("ID should be filled after Create")
	}
	if tok.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled after Create")
	}
}

func TestRepo_Create_UnknownUser(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	// Non-existent user_id triggers a foreign key violation -> ErrNotFound.
	err := repo.Create(ctx, newToken(uuid.New(), 24*time.Hour))
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByHash(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	tok := newToken(user.ID, 24*time.Hour)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByHash(ctx, tok.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: unexpected error: %v", err)
	}
	if got.ID != tok.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, tok.ID)
	}
	if got.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, user.ID)
	}
	if !got.ExpiresAt.Equal(tok.ExpiresAt) {
		t.Errorf("ExpiresAt mismatch: got %v, want %v", got.ExpiresAt, tok.ExpiresAt)
	}
}

func TestRepo_GetByHash_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByHash(context.Background(), "no-such-hash")
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByHash_ExpiredStillReturned(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	// Expiry is the caller's check, so an expired token is still readable.
	user := testhelper.SeedUser(t, pool)
	tok := newToken(user.ID, -time.Hour)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByHash(ctx, tok.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: unexpected error: %v", err)
	}
	if !got.IsExpired(time.Now()) {
		t.Error("token should report expired")
	}
}

func TestRepo_RevokeByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	tok := newToken(user.ID, 24*time.Hour)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.RevokeByID(ctx, tok.ID); err != nil {
		t.Fatalf("RevokeByID: unexpected error: %v", err)
	}

	// Revoked tokens are invisible to GetByHash.
	_, err := repo.GetByHash(ctx, tok.TokenHash)
	assertIsDomainError(t, err, domain.ErrNotFound)

	// Revoking again is a no-op.
	if err := repo.RevokeByID(ctx, tok.ID); err != nil {
		t.Fatalf("RevokeByID (second): unexpected error: %v", err)
	}
}

func TestRepo_RevokeAllByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	first := newToken(user.ID, 24*time.Hour)
	second := newToken(user.ID, 24*time.Hour)
	for _, tok := range []*domain.RefreshToken{first, second} {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	// A different user's token must survive.
	other := testhelper.SeedUser(t, pool)
	otherTok := newToken(other.ID, 24*time.Hour)
	if err := repo.Create(ctx, otherTok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.RevokeAllByUser(ctx, user.ID); err != nil {
		t.Fatalf("RevokeAllByUser: unexpected error: %v", err)
	}

	for _, hash := range []string{first.TokenHash, second.TokenHash} {
		_, err := repo.GetByHash(ctx, hash)
		assertIsDomainError(t, err, domain.ErrNotFound)
	}

	if _, err := repo.GetByHash(ctx, otherTok.TokenHash); err != nil {
		t.Fatalf("other user's token should survive: %v", err)
	}
}

func TestRepo_DeleteExpired(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	expired := newToken(user.ID, -time.Hour)
	revoked := newToken(user.ID, 24*time.Hour)
	active := newToken(user.ID, 24*time.Hour)
	for _, tok := range []*domain.RefreshToken{expired, revoked, active} {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}
	if err := repo.RevokeByID(ctx, revoked.ID); err != nil {
		t.Fatalf("RevokeByID: unexpected error: %v", err)
	}

	// Other tests run against the same database, so only check that at
	// least our two tokens were removed and the active one survived.
	n, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired: unexpected error: %v", err)
	}
	if n < 2 {
		t.Errorf("DeleteExpired removed %d tokens, want at least 2", n)
	}

	if _, err := repo.GetByHash(ctx, active.TokenHash); err != nil {
		t.Fatalf("active token should survive: %v", err)
	}
	_, err = repo.GetByHash(ctx, expired.TokenHash)
	assertIsDomainError(t, err, domain.ErrNotFound)
}
