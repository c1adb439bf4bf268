package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// defaultRelatedLimit is used when RelatedRecipesInput.Limit is zero.
const defaultRelatedLimit = 3

// RelatedRecipes recommends recipes similar to the given one. Candidates
// are scored by overlap: each shared tag is worth two points, each shared
// dietary preference one. The source recipe is excluded and zero-score
// candidates are dropped; ties keep catalog order.
func (s *Service) RelatedRecipes(ctx context.Context, input RelatedRecipesInput) ([]domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("catalog.RelatedRecipes: %w", err)
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultRelatedLimit
	}

	base, err := s.store.RecipeByID(input.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("catalog.RelatedRecipes: %w", err)
	}

	type scored struct {
		recipe domain.Recipe
		score  int
	}
	var candidates []scored
	for _, r := range s.store.Recipes() {
		if r.ID == base.ID {
			continue
		}
		score := 2*overlap(base.Tags, r.Tags) + overlap(base.DietaryPreferences, r.DietaryPreferences)
		if score == 0 {
			continue
		}
		candidates = append(candidates, scored{recipe: r, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]domain.Recipe, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.recipe)
	}
	return out, nil
}

func overlap(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	n := 0
	for _, s := range b {
		if set[s] {
			n++
		}
	}
	return n
}
