package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastebook/admin-api/internal/core/ports"
)

// DashboardHandler serves the admin overview aggregates.
type DashboardHandler struct {
	stats    ports.DashboardService
	activity ports.ActivityService
}

func NewDashboardHandler(stats ports.DashboardService, activity ports.ActivityService) *DashboardHandler {
	return &DashboardHandler{stats: stats, activity: activity}
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// RecentActivity handles GET /api/admin/recent-activity.
//
// @Summary      Recent platform activity
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ActivityItem
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c echo.Context) error {
	items, err := h.activity.RecentActivity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
