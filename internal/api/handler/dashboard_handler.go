package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastadmin/blog-api/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns entity totals and recent activity.
//
// @Summary      Admin dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardSummary
// @Security     BearerAuth
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardService.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
