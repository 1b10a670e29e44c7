package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tastebook/admin-api/internal/core/ports"
)

const topRecipesLimit = 5

type dashboardService struct {
	recipes ports.RecipeRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

// NewDashboardService returns a DashboardService over the recipe and user
// repositories.
func NewDashboardService(recipes ports.RecipeRepository, users ports.UserRepository, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{recipes: recipes, users: users, log: log}
}

// Stats recomputes the dashboard aggregates on every call.
func (s *dashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	totalRecipes, err := s.recipes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: count recipes: %w", err)
	}

	activeUsers, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: count active users: %w", err)
	}

	top, err := s.recipes.TopViewed(ctx, topRecipesLimit)
	if err != nil {
		return nil, fmt.Errorf("stats: top viewed: %w", err)
	}

	return &ports.DashboardStats{
		TotalRecipes:      totalRecipes,
		ActiveUsers:       activeUsers,
		MostViewedRecipes: top,
	}, nil
}
