package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// CreateBlogInput carries all data for a new blog post. TagsRaw is the
// serialized tag list as submitted by the client (a JSON array string);
// the service owns parsing it.
type CreateBlogInput struct {
	Title       string
	Content     string
	TagsRaw     string
	AuthorID    string
	PicturePath string
}

// UpdateBlogInput carries a partial blog edit. Empty strings mean the
// field was not supplied and keeps its stored value, mirroring the
// client's form semantics.
type UpdateBlogInput struct {
	Title       string
	Content     string
	TagsRaw     string
	PicturePath string
}

// ModerationService drives content through its moderation states and
// manages editorial blog posts.
type ModerationService interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	ListFeaturedRecipes(ctx context.Context) ([]domain.Recipe, error)
	// SetRecipeStatus validates status against the enumerated states
	// before any write.
	SetRecipeStatus(ctx context.Context, id string, status string) (*domain.Recipe, error)
	ApproveRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	RejectRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	// SetRecipeFeatured toggles the featured flag independently of status.
	SetRecipeFeatured(ctx context.Context, id string, featured bool) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	GetBlog(ctx context.Context, id string) (*domain.Blog, error)
	CreateBlog(ctx context.Context, input CreateBlogInput) (*domain.Blog, error)
	UpdateBlog(ctx context.Context, id string, input UpdateBlogInput) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, id string) error

	ListComments(ctx context.Context) ([]domain.Comment, error)
}
