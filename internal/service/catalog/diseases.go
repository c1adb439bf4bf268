package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// SearchDiseases filters the disease library by free text and category.
// Results come back sorted alphabetically by name.
func (s *Service) SearchDiseases(ctx context.Context, input SearchDiseasesInput) ([]domain.Disease, error) {
	f := input.filter()

	out := make([]domain.Disease, 0)
	for _, d := range s.store.DiseasesAlphabetically() {
		if !matchDisease(d, f) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// GetDisease returns a single disease by id.
func (s *Service) GetDisease(ctx context.Context, id string) (domain.Disease, error) {
	d, err := s.store.DiseaseByID(id)
	if err != nil {
		return domain.Disease{}, fmt.Errorf("catalog.GetDisease: %w", err)
	}
	return d, nil
}

// FeaturedDiseases returns diseases highlighted in the library.
func (s *Service) FeaturedDiseases(ctx context.Context) ([]domain.Disease, error) {
	return s.store.FeaturedDiseases(), nil
}

// RelatedDiseases resolves the cross references of the given disease.
// References pointing outside the library are dropped silently.
func (s *Service) RelatedDiseases(ctx context.Context, id string) ([]domain.Disease, error) {
	related, err := s.store.RelatedDiseases(id)
	if err != nil {
		return nil, fmt.Errorf("catalog.RelatedDiseases: %w", err)
	}
	return related, nil
}

// DiseaseCategories lists the library's category ids with display names.
func (s *Service) DiseaseCategories(ctx context.Context) ([]DiseaseCategory, error) {
	ids := s.store.DiseaseCategories()
	out := make([]DiseaseCategory, 0, len(ids))
	for _, id := range ids {
		out = append(out, DiseaseCategory{ID: id, Name: s.store.DiseaseCategoryName(id)})
	}
	return out, nil
}

// DiseaseCategory pairs a category id with its display name.
type DiseaseCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func matchDisease(d domain.Disease, f domain.DiseaseFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Description), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(d.Category, f.Category) {
		return false
	}
	return true
}
