package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// FindAll returns every recipe, newest first, with the creator display
	// name resolved. A dangling creator reference yields an empty name.
	FindAll(ctx context.Context) ([]domain.Recipe, error)
	FindFeatured(ctx context.Context) ([]domain.Recipe, error)
	// FindRecent returns the limit most recently created recipes
	// (title and created_at only).
	FindRecent(ctx context.Context, limit int) ([]domain.Recipe, error)
	// SetStatus atomically updates the moderation status and returns the
	// post-mutation record.
	SetStatus(ctx context.Context, id string, status domain.RecipeStatus) (*domain.Recipe, error)
	SetFeatured(ctx context.Context, id string, featured bool) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// TopViewed returns the limit most viewed recipes projected to
	// title and view counter, descending by views.
	TopViewed(ctx context.Context, limit int) ([]domain.RecipeStat, error)
}
