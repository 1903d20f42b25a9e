package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/gemi-dot/barangay-ims/internal/errors"
	"github.com/gemi-dot/barangay-ims/internal/services"
)

// ReportHandler serves the case-worker report endpoints.
type ReportHandler struct {
	service services.ReportService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// SeniorCitizens handles GET /api/v1/reports/senior-citizens.
func (h *ReportHandler) SeniorCitizens(c *gin.Context) {
	report, err := h.service.SeniorCitizens(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute senior citizens report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Businesses handles GET /api/v1/reports/businesses.
func (h *ReportHandler) Businesses(c *gin.Context) {
	report, err := h.service.Businesses(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute businesses report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// FourPs handles GET /api/v1/reports/4ps.
func (h *ReportHandler) FourPs(c *gin.Context) {
	report, err := h.service.FourPs(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute 4Ps report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Pregnancies handles GET /api/v1/reports/pregnancies.
func (h *ReportHandler) Pregnancies(c *gin.Context) {
	report, err := h.service.Pregnancies(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute pregnancy report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
