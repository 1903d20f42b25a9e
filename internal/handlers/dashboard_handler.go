package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/gemi-dot/barangay-ims/internal/errors"
	"github.com/gemi-dot/barangay-ims/internal/middleware"
	"github.com/gemi-dot/barangay-ims/internal/services"
)

// DashboardHandler serves the dashboard summary endpoint.
type DashboardHandler struct {
	service services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/v1/dashboard.
// It returns every count and histogram the main dashboard renders.
func (h *DashboardHandler) Summary(c *gin.Context) {
	log := middleware.GetLogger(c)
	if log != nil {
		log.Debug("Processing dashboard summary request", nil)
	}

	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute dashboard summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
