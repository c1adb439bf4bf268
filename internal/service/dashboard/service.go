// Package dashboard aggregates the data behind the signed-in landing
// page: sample activity series, upcoming appointments, featured content,
// and counts derived from the user's profile.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

type profileService interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.HealthGoal, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	ListSavedRecipes(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type catalogService interface {
	FeaturedTests(ctx context.Context) ([]domain.HealthTest, error)
}

// Overview is the aggregated dashboard payload.
type Overview struct {
	Activity            map[string][]MetricPoint `json:"activity"`
	Appointments        []Appointment            `json:"appointments"`
	Articles            []Article                `json:"articles"`
	FeaturedTests       []domain.HealthTest      `json:"featuredTests"`
	Goals               []domain.HealthGoal      `json:"goals"`
	UnreadNotifications int                      `json:"unreadNotifications"`
	SavedRecipeCount    int                      `json:"savedRecipeCount"`
}

// Service assembles the dashboard.
type Service struct {
	profiles profileService
	catalog  catalogService
	log      *slog.Logger
}

// NewService creates a new Dashboard service.
func NewService(log *slog.Logger, profiles profileService, catalog catalogService) *Service {
	return &Service{
		profiles: profiles,
		catalog:  catalog,
		log:      log.With("service", "dashboard"),
	}
}

// Overview builds the dashboard for the given user.
func (s *Service) Overview(ctx context.Context, userID uuid.UUID) (*Overview, error) {
	goals, err := s.profiles.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Overview goals: %w", err)
	}
	unread, err := s.profiles.UnreadCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Overview notifications: %w", err)
	}
	saved, err := s.profiles.ListSavedRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Overview saved recipes: %w", err)
	}
	featured, err := s.catalog.FeaturedTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Overview featured tests: %w", err)
	}

	return &Overview{
		Activity:            activitySeries,
		Appointments:        appointments,
		Articles:            articles,
		FeaturedTests:       featured,
		Goals:               goals,
		UnreadNotifications: unread,
		SavedRecipeCount:    len(saved),
	}, nil
}
