// Package catalog holds the built-in health test, recipe, and disease
// catalogs. The data is fixed at startup; the store only reads it.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// Store provides read access to the built-in catalogs. It is safe for
// concurrent use: all state is written once in NewStore and never mutated.
type Store struct {
	tests    []domain.HealthTest
	recipes  []domain.Recipe
	diseases []domain.Disease

	testByID    map[string]int
	recipeByID  map[string]int
	diseaseByID map[string]int
}

// NewStore builds a store over the built-in catalog data.
func NewStore() *Store {
	s := &Store{
		tests:       healthTests,
		recipes:     recipes,
		diseases:    diseases,
		testByID:    make(map[string]int, len(healthTests)),
		recipeByID:  make(map[string]int, len(recipes)),
		diseaseByID: make(map[string]int, len(diseases)),
	}
	for i, t := range s.tests {
		s.testByID[t.ID] = i
	}
	for i, r := range s.recipes {
		s.recipeByID[r.ID] = i
	}
	for i, d := range s.diseases {
		s.diseaseByID[d.ID] = i
	}
	return s
}

// Tests returns all health tests in catalog order.
func (s *Store) Tests() []domain.HealthTest {
	out := make([]domain.HealthTest, len(s.tests))
	copy(out, s.tests)
	return out
}

// TestByID returns the health test with the given id.
func (s *Store) TestByID(id string) (domain.HealthTest, error) {
	i, ok := s.testByID[id]
	if !ok {
		return domain.HealthTest{}, fmt.Errorf("catalog.TestByID: %q: %w", id, domain.ErrNotFound)
	}
	return s.tests[i], nil
}

// FeaturedTests returns tests flagged as featured, in catalog order.
func (s *Store) FeaturedTests() []domain.HealthTest {
	var out []domain.HealthTest
	for _, t := range s.tests {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

// TestCategories returns the distinct test categories in first-seen order.
func (s *Store) TestCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range s.tests {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Recipes returns all recipes in catalog order.
func (s *Store) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// RecipeByID returns the recipe with the given id.
func (s *Store) RecipeByID(id string) (domain.Recipe, error) {
	i, ok := s.recipeByID[id]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("catalog.RecipeByID: %q: %w", id, domain.ErrNotFound)
	}
	return s.recipes[i], nil
}

// FeaturedRecipes returns the homepage recipe picks: the first three
// recipes in catalog order.
func (s *Store) FeaturedRecipes() []domain.Recipe {
	n := 3
	if len(s.recipes) < n {
		n = len(s.recipes)
	}
	out := make([]domain.Recipe, n)
	copy(out, s.recipes[:n])
	return out
}

// Diseases returns all diseases in catalog order.
func (s *Store) Diseases() []domain.Disease {
	out := make([]domain.Disease, len(s.diseases))
	copy(out, s.diseases)
	return out
}

// DiseaseByID returns the disease with the given id.
func (s *Store) DiseaseByID(id string) (domain.Disease, error) {
	i, ok := s.diseaseByID[id]
	if !ok {
		return domain.Disease{}, fmt.Errorf("catalog.DiseaseByID: %q: %w", id, domain.ErrNotFound)
	}
	return s.diseases[i], nil
}

// FeaturedDiseases returns diseases flagged as featured, in catalog order.
func (s *Store) FeaturedDiseases() []domain.Disease {
	var out []domain.Disease
	for _, d := range s.diseases {
		if d.Featured {
			out = append(out, d)
		}
	}
	return out
}

// DiseasesByCategory returns diseases in the given category id.
func (s *Store) DiseasesByCategory(category string) []domain.Disease {
	var out []domain.Disease
	for _, d := range s.diseases {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// RelatedDiseases resolves the related ids of the given disease.
// References to conditions not in the library are dropped.
func (s *Store) RelatedDiseases(id string) ([]domain.Disease, error) {
	d, err := s.DiseaseByID(id)
	if err != nil {
		return nil, err
	}
	var out []domain.Disease
	for _, rid := range d.RelatedIDs {
		if i, ok := s.diseaseByID[rid]; ok {
			out = append(out, s.diseases[i])
		}
	}
	return out, nil
}

// DiseasesAlphabetically returns all diseases sorted by name,
// case-insensitively.
func (s *Store) DiseasesAlphabetically() []domain.Disease {
	out := s.Diseases()
	sortDiseasesByName(out)
	return out
}

func sortDiseasesByName(ds []domain.Disease) {
	sort.SliceStable(ds, func(i, j int) bool {
		return strings.ToLower(ds[i].Name) < strings.ToLower(ds[j].Name)
	})
}

// DiseaseCategoryName returns the display name of a category id, or the
// id itself if it is unknown.
func (s *Store) DiseaseCategoryName(id string) string {
	if name, ok := diseaseCategories[id]; ok {
		return name
	}
	return id
}

// DiseaseCategories returns all category ids sorted by display name.
func (s *Store) DiseaseCategories() []string {
	out := make([]string, 0, len(diseaseCategories))
	for id := range diseaseCategories {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return diseaseCategories[out[i]] < diseaseCategories[out[j]]
	})
	return out
}
