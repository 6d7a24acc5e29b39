package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/services"
)

// DashboardController serves institute-wide metrics
type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetMetrics returns the dashboard summary
// @Summary Dashboard metrics
// @Description Student and teacher totals, revenue paid this month and this month's attendance rate
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardMetrics}
// @Router /dashboard/metrics [get]
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.dashboardService.GetMetrics(ctx.Request.Context()))
}
