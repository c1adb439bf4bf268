package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// SearchTests filters the health test catalog by free text and facets.
func (s *Service) SearchTests(ctx context.Context, input SearchTestsInput) ([]domain.HealthTest, error) {
	f := input.filter()

	out := make([]domain.HealthTest, 0)
	for _, t := range s.store.Tests() {
		if !matchTest(t, f) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// GetTest returns a single health test by id.
func (s *Service) GetTest(ctx context.Context, id string) (domain.HealthTest, error) {
	t, err := s.store.TestByID(id)
	if err != nil {
		return domain.HealthTest{}, fmt.Errorf("catalog.GetTest: %w", err)
	}
	return t, nil
}

// FeaturedTests returns the tests highlighted on the home page.
func (s *Service) FeaturedTests(ctx context.Context) ([]domain.HealthTest, error) {
	return s.store.FeaturedTests(), nil
}

// TestCategories returns the distinct test categories.
func (s *Service) TestCategories(ctx context.Context) ([]string, error) {
	return s.store.TestCategories(), nil
}

func matchTest(t domain.HealthTest, f domain.TestFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!anyTagContains(t.Tags, q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(string(t.Difficulty), f.Difficulty) {
		return false
	}
	return true
}
