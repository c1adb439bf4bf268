package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	hash := "$2a$04$placeholderplaceholderplaceplaceholderplaceholderplace"
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// mustJSON marshals v or fails the test.
func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("testhelper: marshal: %v", err)
	}
	return b
}

// SeedUserWithProfile creates a user plus a profile row holding the
// default notifications. Returns the user.
func SeedUserWithProfile(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool)
	p := domain.DefaultProfile()

	_, err := pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, goals, notifications, saved_recipes)
		 VALUES ($1, '[]'::jsonb, $2, '[]'::jsonb)`,
		user.ID, mustJSON(t, p.Notifications),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserWithProfile insert profile: %v", err)
	}

	return user
}
