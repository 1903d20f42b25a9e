package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/gemi-dot/barangay-ims/internal/errors"
	"github.com/gemi-dot/barangay-ims/internal/middleware"
	"github.com/gemi-dot/barangay-ims/internal/services"
)

// HouseholdHandler serves the household roster endpoint.
type HouseholdHandler struct {
	service services.HouseholdService
}

// NewHouseholdHandler creates a new HouseholdHandler instance.
func NewHouseholdHandler(service services.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{service: service}
}

// Roster handles GET /api/v1/households.
// It returns every household with its member IDs, ordered by household number.
func (h *HouseholdHandler) Roster(c *gin.Context) {
	log := middleware.GetLogger(c)
	if log != nil {
		log.Debug("Processing household roster request", nil)
	}

	roster, err := h.service.Roster(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list households", err)
		return
	}

	c.JSON(http.StatusOK, roster)
}
