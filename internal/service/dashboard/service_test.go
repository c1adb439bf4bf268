package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

type mockProfiles struct {
	goals  []domain.HealthGoal
	unread int
	saved  []string
}

func (m *mockProfiles) ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.HealthGoal, error) {
	return m.goals, nil
}

func (m *mockProfiles) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.unread, nil
}

func (m *mockProfiles) ListSavedRecipes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return m.saved, nil
}

type mockCatalog struct {
	featured []domain.HealthTest
}

func (m *mockCatalog) FeaturedTests(ctx context.Context) ([]domain.HealthTest, error) {
	return m.featured, nil
}

func TestOverview(t *testing.T) {
	profiles := &mockProfiles{
		goals:  []domain.HealthGoal{{ID: "g1", Name: "Weight Loss"}},
		unread: 2,
		saved:  []string{"mediterranean-salad", "vegetable-curry"},
	}
	cat := &mockCatalog{
		featured: []domain.HealthTest{{ID: "bmi-calculator", Title: "BMI Calculator"}},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(log, profiles, cat)

	got, err := svc.Overview(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Len(t, got.Goals, 1)
	assert.Equal(t, 2, got.UnreadNotifications)
	assert.Equal(t, 2, got.SavedRecipeCount)
	assert.Len(t, got.FeaturedTests, 1)

	// The sample series always ships with the four metrics, a week each.
	for _, metric := range []string{"steps", "sleep", "calories", "heartRate"} {
		assert.Len(t, got.Activity[metric], 7, metric)
	}
	assert.Len(t, got.Appointments, 3)
	assert.Len(t, got.Articles, 4)
}
