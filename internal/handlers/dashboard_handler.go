package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"butce/internal/services"
)

// DashboardHandler serves the derived monthly views.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview returns totals, per-user balances, category distributions, and
// the trend series for the selected month and user filter.
func (h *DashboardHandler) Overview(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.dashboardService.Overview(month, parseUserFilter(c)))
}
