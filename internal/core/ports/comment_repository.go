package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// CommentRepository defines read operations for comments. Comments are
// read-only from the admin API.
type CommentRepository interface {
	// FindAll returns every comment, newest first, with author name and
	// recipe title resolved.
	FindAll(ctx context.Context) ([]domain.Comment, error)
	// FindRecent returns the limit most recent comments with the author
	// display name resolved (content, created_at, author name only).
	FindRecent(ctx context.Context, limit int) ([]domain.Comment, error)
}
