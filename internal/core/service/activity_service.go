package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tastebook/admin-api/internal/api/metrics"
	"github.com/tastebook/admin-api/internal/core/domain"
	"github.com/tastebook/admin-api/internal/core/ports"
)

const (
	recentPerKind = 5
	feedSize      = 10
)

type activityService struct {
	recipes  ports.RecipeRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

// NewActivityService returns an ActivityService backed by the given
// repositories.
func NewActivityService(
	recipes ports.RecipeRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) ports.ActivityService {
	return &activityService{recipes: recipes, comments: comments, users: users, log: log}
}

// RecentActivity fetches the five most recent recipes, comments and users,
// tags each with its kind, merges them and keeps the ten newest.
//
// Ties on CreatedAt are broken by kind (recipe, comment, user) and then by
// fetch order within a kind: the merge uses a stable sort over the
// concatenation, so equal timestamps keep their pre-sort position.
func (s *activityService) RecentActivity(ctx context.Context) ([]domain.ActivityItem, error) {
	start := time.Now()

	recipes, err := s.recipes.FindRecent(ctx, recentPerKind)
	if err != nil {
		return nil, fmt.Errorf("recent activity: recipes: %w", err)
	}
	comments, err := s.comments.FindRecent(ctx, recentPerKind)
	if err != nil {
		return nil, fmt.Errorf("recent activity: comments: %w", err)
	}
	users, err := s.users.FindRecent(ctx, recentPerKind)
	if err != nil {
		return nil, fmt.Errorf("recent activity: users: %w", err)
	}

	items := make([]domain.ActivityItem, 0, len(recipes)+len(comments)+len(users))
	for _, r := range recipes {
		items = append(items, domain.ActivityItem{
			Kind:      domain.ActivityRecipe,
			Title:     r.Title,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, c := range comments {
		items = append(items, domain.ActivityItem{
			Kind:       domain.ActivityComment,
			Content:    c.Content,
			AuthorName: c.AuthorName,
			CreatedAt:  c.CreatedAt,
		})
	}
	for _, u := range users {
		items = append(items, domain.ActivityItem{
			Kind:      domain.ActivityUser,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > feedSize {
		items = items[:feedSize]
	}

	metrics.ActivityFeedDuration.Observe(time.Since(start).Seconds())
	s.log.Debug().Int("items", len(items)).Msg("activity feed built")

	return items, nil
}
