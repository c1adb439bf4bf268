package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// ListSavedRecipes returns the user's saved recipe ids in save order.
func (s *Service) ListSavedRecipes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.ListSavedRecipes: %w", err)
	}
	return p.SavedRecipes, nil
}

// SaveRecipe adds a recipe id to the user's saved list. The list is a
// set: saving an already-saved recipe is a no-op, not a duplicate and
// not an error. The id must exist in the catalog.
func (s *Service) SaveRecipe(ctx context.Context, userID uuid.UUID, recipeID string) error {
	if _, err := s.recipes.RecipeByID(recipeID); err != nil {
		return fmt.Errorf("profile.SaveRecipe: %w", err)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile.SaveRecipe: %w", err)
	}

	for _, id := range p.SavedRecipes {
		if id == recipeID {
			return nil
		}
	}

	ids := append(p.SavedRecipes, recipeID)
	if err := s.profiles.SaveRecipeIDs(ctx, userID, ids); err != nil {
		return fmt.Errorf("profile.SaveRecipe: %w", err)
	}
	return nil
}

// UnsaveRecipe removes a recipe id from the saved list. Removing an id
// that is not saved is a no-op.
func (s *Service) UnsaveRecipe(ctx context.Context, userID uuid.UUID, recipeID string) error {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile.UnsaveRecipe: %w", err)
	}

	ids := make([]string, 0, len(p.SavedRecipes))
	changed := false
	for _, id := range p.SavedRecipes {
		if id == recipeID {
			changed = true
			continue
		}
		ids = append(ids, id)
	}
	if !changed {
		return nil
	}

	if err := s.profiles.SaveRecipeIDs(ctx, userID, ids); err != nil {
		return fmt.Errorf("profile.UnsaveRecipe: %w", err)
	}
	return nil
}

// SavedRecipes resolves the saved ids to full recipes, dropping ids that
// have left the catalog.
func (s *Service) SavedRecipes(ctx context.Context, userID uuid.UUID) ([]domain.Recipe, error) {
	ids, err := s.ListSavedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Recipe, 0, len(ids))
	for _, id := range ids {
		r, err := s.recipes.RecipeByID(id)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
