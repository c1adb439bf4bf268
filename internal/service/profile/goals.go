package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// ListGoals returns the user's health goals.
func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.HealthGoal, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.ListGoals: %w", err)
	}
	return p.Goals, nil
}

// AddGoal appends a new goal to the user's list and returns it.
func (s *Service) AddGoal(ctx context.Context, userID uuid.UUID, input GoalInput) (domain.HealthGoal, error) {
	if err := input.Validate(); err != nil {
		return domain.HealthGoal{}, fmt.Errorf("profile.AddGoal: %w", err)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return domain.HealthGoal{}, fmt.Errorf("profile.AddGoal: %w", err)
	}

	goal := input.goal(uuid.New().String())
	goals := append(p.Goals, goal)
	if err := s.profiles.SaveGoals(ctx, userID, goals); err != nil {
		return domain.HealthGoal{}, fmt.Errorf("profile.AddGoal: %w", err)
	}
	return goal, nil
}

// UpdateGoal replaces the goal with the given id. Unknown ids yield
// ErrNotFound.
func (s *Service) UpdateGoal(ctx context.Context, userID uuid.UUID, goalID string, input GoalInput) (domain.HealthGoal, error) {
	if err := input.Validate(); err != nil {
		return domain.HealthGoal{}, fmt.Errorf("profile.UpdateGoal: %w", err)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return domain.HealthGoal{}, fmt.Errorf("profile.UpdateGoal: %w", err)
	}

	updated := input.goal(goalID)
	found := false
	for i, g := range p.Goals {
		if g.ID == goalID {
			p.Goals[i] = updated
			found = true
			break
		}
	}
	if !found {
		return domain.HealthGoal{}, fmt.Errorf("profile.UpdateGoal: %q: %w", goalID, domain.ErrNotFound)
	}

	if err := s.profiles.SaveGoals(ctx, userID, p.Goals); err != nil {
		return domain.HealthGoal{}, fmt.Errorf("profile.UpdateGoal: %w", err)
	}
	return updated, nil
}

// DeleteGoal removes the goal with the given id. Unknown ids yield
// ErrNotFound.
func (s *Service) DeleteGoal(ctx context.Context, userID uuid.UUID, goalID string) error {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile.DeleteGoal: %w", err)
	}

	goals := make([]domain.HealthGoal, 0, len(p.Goals))
	found := false
	for _, g := range p.Goals {
		if g.ID == goalID {
			found = true
			continue
		}
		goals = append(goals, g)
	}
	if !found {
		return fmt.Errorf("profile.DeleteGoal: %q: %w", goalID, domain.ErrNotFound)
	}

	if err := s.profiles.SaveGoals(ctx, userID, goals); err != nil {
		return fmt.Errorf("profile.DeleteGoal: %w", err)
	}
	return nil
}
