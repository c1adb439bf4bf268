// Package profile implements per-user preference state: health goals,
// notifications, and the saved-recipe list. Each list is stored as one
// blob and rewritten whole on every mutation; there is no diffing.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	SaveGoals(ctx context.Context, userID uuid.UUID, goals []domain.HealthGoal) error
	SaveNotifications(ctx context.Context, userID uuid.UUID, notifications []domain.Notification) error
	SaveRecipeIDs(ctx context.Context, userID uuid.UUID, ids []string) error
}

type recipeCatalog interface {
	RecipeByID(id string) (domain.Recipe, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the profile business logic.
type Service struct {
	profiles profileRepo
	recipes  recipeCatalog
	log      *slog.Logger
}

// NewService creates a new Profile service.
func NewService(log *slog.Logger, profiles profileRepo, recipes recipeCatalog) *Service {
	return &Service{
		profiles: profiles,
		recipes:  recipes,
		log:      log.With("service", "profile"),
	}
}
