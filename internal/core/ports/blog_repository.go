package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// BlogUpdate carries a partial blog mutation. Nil fields keep their stored
// value; the whole update is applied in one atomic write.
type BlogUpdate struct {
	Title   *string
	Content *string
	Tags    *[]string
	Picture *string
}

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// FindAll returns every blog, newest first, with the author display
	// name resolved.
	FindAll(ctx context.Context) ([]domain.Blog, error)
	Update(ctx context.Context, id string, update BlogUpdate) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
