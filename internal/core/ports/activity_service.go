package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// ActivityService builds the recent activity feed: a chronological merge
// of the latest recipes, comments and users.
type ActivityService interface {
	// RecentActivity returns at most ten items, non-increasing by creation
	// time. A failure in any sub-fetch fails the whole call; partial feeds
	// are never returned.
	RecentActivity(ctx context.Context) ([]domain.ActivityItem, error)
}
