package handlers

import (
	"net/http"
	"strconv"

	"lab_dashboard/internal/config"
	"lab_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	cfg              *config.Config
}

func NewDashboardHandler(dashboardService services.DashboardService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		cfg:              cfg,
	}
}

// scopeFromRequest reads the role context resolved upstream. Auth itself is
// not this service's concern; it only applies the scope.
func scopeFromRequest(c *gin.Context) (services.Scope, bool) {
	scope := services.Scope{
		Role:           c.GetHeader("X-User-Role"),
		Coordinator:    c.GetHeader("X-Coordinator"),
		Representative: c.GetHeader("X-Representative"),
	}
	if scope.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing X-User-Role header"})
		return scope, false
	}
	return scope, true
}

// overdueThreshold allows a per-request override of the configured
// dashboard threshold; the value is a view parameter, not a constant.
func (h *DashboardHandler) overdueThreshold(c *gin.Context) float64 {
	if raw := c.Query("threshold"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return h.cfg.OverdueThresholdDays
}

func (h *DashboardHandler) GetOrders(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	orders, err := h.dashboardService.GetOrders(scope, h.overdueThreshold(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSummary(scope, h.overdueThreshold(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	buckets, err := h.dashboardService.GetMonthlyRevenue(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": buckets})
}

func (h *DashboardHandler) GetMonitor(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	rows, err := h.dashboardService.GetMonitor(scope, h.cfg.MonitorCriticalDays, h.cfg.MonitorWarningDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch monitor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"monitor": rows, "count": len(rows)})
}
