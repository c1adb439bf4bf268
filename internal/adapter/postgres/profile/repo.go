// Package profile implements the user-profile repository using PostgreSQL.
//
// The profile is three JSONB blobs (goals, notifications, saved recipes)
// keyed by user id. Writes replace a whole blob; reads tolerate absent
// rows and malformed blobs by returning the empty value, so a corrupt
// profile can never lock a user out.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/panacureo/panacureo-backend/internal/adapter/postgres"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// qb builds queries with PostgreSQL $N placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a profile row for a new user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, p domain.Profile) error {
	goals, notifications, saved, err := marshalProfile(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	query := qb.Insert("user_profiles").
		Columns("user_id", "goals", "notifications", "saved_recipes").
		Values(userID, goals, notifications, saved)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "user_profile", userID)
	}

	return nil
}

// Get returns the profile for the given user. A missing row or a blob
// that fails to decode reads as the empty value, never as an error.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	query := qb.Select("goals", "notifications", "saved_recipes").
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var goals, notifications, saved []byte
	err = q.QueryRow(ctx, sql, args...).Scan(&goals, &notifications, &saved)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, mapError(err, "user_profile", userID)
	}

	var p domain.Profile
	decodeBlob(goals, &p.Goals)
	decodeBlob(notifications, &p.Notifications)
	decodeBlob(saved, &p.SavedRecipes)
	return p, nil
}

// SaveGoals replaces the user's goals blob.
func (r *Repo) SaveGoals(ctx context.Context, userID uuid.UUID, goals []domain.HealthGoal) error {
	return r.saveBlob(ctx, userID, "goals", goals)
}

// SaveNotifications replaces the user's notifications blob.
func (r *Repo) SaveNotifications(ctx context.Context, userID uuid.UUID, notifications []domain.Notification) error {
	return r.saveBlob(ctx, userID, "notifications", notifications)
}

// SaveRecipeIDs replaces the user's saved-recipes blob.
func (r *Repo) SaveRecipeIDs(ctx context.Context, userID uuid.UUID, ids []string) error {
	return r.saveBlob(ctx, userID, "saved_recipes", ids)
}

// saveBlob upserts one JSONB column for the user. The row may be absent
// for accounts created before profiles existed, so the write inserts it.
func (r *Repo) saveBlob(ctx context.Context, userID uuid.UUID, column string, value any) error {
	blob, err := json.Marshal(emptyAsList(value))
	if err != nil {
		return fmt.Errorf("encode %s: %w", column, err)
	}

	query := qb.Insert("user_profiles").
		Columns("user_id", column).
		Values(userID, blob).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (user_id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = now()",
			column, column,
		))

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "user_profile", userID)
	}

	return nil
}

// marshalProfile encodes the three blobs, with nil slices stored as [].
func marshalProfile(p domain.Profile) (goals, notifications, saved []byte, err error) {
	goals, err = json.Marshal(emptyAsList(p.Goals))
	if err != nil {
		return nil, nil, nil, err
	}
	notifications, err = json.Marshal(emptyAsList(p.Notifications))
	if err != nil {
		return nil, nil, nil, err
	}
	saved, err = json.Marshal(emptyAsList(p.SavedRecipes))
	if err != nil {
		return nil, nil, nil, err
	}
	return goals, notifications, saved, nil
}

// emptyAsList keeps nil slices out of the database: they encode as
// "null", which would defeat the NOT NULL '[]' default.
func emptyAsList(v any) any {
	switch s := v.(type) {
	case []domain.HealthGoal:
		if s == nil {
			return []domain.HealthGoal{}
		}
	case []domain.Notification:
		if s == nil {
			return []domain.Notification{}
		}
	case []string:
		if s == nil {
			return []string{}
		}
	}
	return v
}

// decodeBlob unmarshals into out, leaving it zero on malformed input.
func decodeBlob[T any](blob []byte, out *T) {
	if len(blob) == 0 {
		return
	}
	var v T
	if err := json.Unmarshal(blob, &v); err != nil {
		return
	}
	*out = v
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
