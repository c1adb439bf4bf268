package catalog

import (
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// normalizeFacet folds the "all" sentinel and surrounding whitespace away.
// An empty result means the facet is not applied.
func normalizeFacet(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, domain.FacetAll) {
		return ""
	}
	return v
}

// SearchRecipesInput holds the parameters for searching recipes.
type SearchRecipesInput struct {
	Query      string
	Dietary    string
	MealType   string
	Difficulty string
	Sort       string
}

// Validate checks all fields and collects all errors.
func (i *SearchRecipesInput) Validate() error {
	var errs []domain.FieldError

	if s := strings.TrimSpace(i.Sort); s != "" && !domain.RecipeSort(s).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort option"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// filter converts the raw input into a normalized domain filter.
func (i *SearchRecipesInput) filter() domain.RecipeFilter {
	sort := domain.RecipeSort(strings.TrimSpace(i.Sort))
	if sort == "" {
		sort = domain.RecipeSortDefault
	}
	return domain.RecipeFilter{
		Query:      strings.TrimSpace(i.Query),
		Dietary:    normalizeFacet(i.Dietary),
		MealType:   normalizeFacet(i.MealType),
		Difficulty: normalizeFacet(i.Difficulty),
		Sort:       sort,
	}
}

// SearchTestsInput holds the parameters for searching health tests.
type SearchTestsInput struct {
	Query      string
	Category   string
	Difficulty string
}

func (i *SearchTestsInput) filter() domain.TestFilter {
	return domain.TestFilter{
		Query:      strings.TrimSpace(i.Query),
		Category:   normalizeFacet(i.Category),
		Difficulty: normalizeFacet(i.Difficulty),
	}
}

// SearchDiseasesInput holds the parameters for searching the disease library.
type SearchDiseasesInput struct {
	Query    string
	Category string
}

func (i *SearchDiseasesInput) filter() domain.DiseaseFilter {
	return domain.DiseaseFilter{
		Query:    strings.TrimSpace(i.Query),
		Category: normalizeFacet(i.Category),
	}
}

// RelatedRecipesInput holds the parameters for recipe recommendations.
type RelatedRecipesInput struct {
	RecipeID string
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i *RelatedRecipesInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RecipeID) == "" {
		errs = append(errs, domain.FieldError{Field: "recipe_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 50 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
