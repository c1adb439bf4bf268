// Package catalog implements search and lookup over the built-in health
// test, recipe, and disease catalogs.
package catalog

import (
	"log/slog"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type store interface {
	Tests() []domain.HealthTest
	TestByID(id string) (domain.HealthTest, error)
	FeaturedTests() []domain.HealthTest
	TestCategories() []string
	Recipes() []domain.Recipe
	RecipeByID(id string) (domain.Recipe, error)
	FeaturedRecipes() []domain.Recipe
	Diseases() []domain.Disease
	DiseaseByID(id string) (domain.Disease, error)
	FeaturedDiseases() []domain.Disease
	RelatedDiseases(id string) ([]domain.Disease, error)
	DiseasesAlphabetically() []domain.Disease
	DiseaseCategories() []string
	DiseaseCategoryName(id string) string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	store store
	log   *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(log *slog.Logger, store store) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "catalog"),
	}
}
