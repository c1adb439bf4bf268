package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// SearchRecipes filters the recipe catalog by free text and facets, then
// applies the requested sort. An empty result is a valid outcome, not an
// error.
func (s *Service) SearchRecipes(ctx context.Context, input SearchRecipesInput) ([]domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("catalog.SearchRecipes: %w", err)
	}
	f := input.filter()

	out := make([]domain.Recipe, 0)
	for _, r := range s.store.Recipes() {
		if !matchRecipe(r, f) {
			continue
		}
		out = append(out, r)
	}
	sortRecipes(out, f.Sort)
	return out, nil
}

// GetRecipe returns a single recipe by id.
func (s *Service) GetRecipe(ctx context.Context, id string) (domain.Recipe, error) {
	r, err := s.store.RecipeByID(id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("catalog.GetRecipe: %w", err)
	}
	return r, nil
}

// FeaturedRecipes returns the homepage recipe picks.
func (s *Service) FeaturedRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.store.FeaturedRecipes(), nil
}

func matchRecipe(r domain.Recipe, f domain.RecipeFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) &&
			!anyTagContains(r.Tags, q) {
			return false
		}
	}
	if f.Dietary != "" && !containsFold(r.DietaryPreferences, f.Dietary) {
		return false
	}
	if f.MealType != "" && !strings.EqualFold(string(r.MealType), f.MealType) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(string(r.Difficulty), f.Difficulty) {
		return false
	}
	return true
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// anyTagContains reports whether any tag contains q as a substring.
// q must already be lowercased.
func anyTagContains(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortRecipes orders recipes in place. Default keeps catalog order; the
// time sorts use prep plus cook time. All sorts are stable so equal
// elements keep their catalog order.
func sortRecipes(recipes []domain.Recipe, by domain.RecipeSort) {
	switch by {
	case domain.RecipeSortTimeAsc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].TotalTime() < recipes[j].TotalTime()
		})
	case domain.RecipeSortTimeDesc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].TotalTime() > recipes[j].TotalTime()
		})
	case domain.RecipeSortCaloriesAsc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Nutrition.Calories < recipes[j].Nutrition.Calories
		})
	case domain.RecipeSortCaloriesDesc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Nutrition.Calories > recipes[j].Nutrition.Calories
		})
	}
}
