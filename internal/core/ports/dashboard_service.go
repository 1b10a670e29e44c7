package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// DashboardStats is the aggregate snapshot shown on the admin overview.
type DashboardStats struct {
	TotalRecipes      int64               `json:"total_recipes"`
	ActiveUsers       int64               `json:"active_users"`
	MostViewedRecipes []domain.RecipeStat `json:"most_viewed_recipes"`
}

// DashboardService computes aggregate counts over the store. Pure read,
// recomputed on every call.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
