package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/gemi-dot/barangay-ims/internal/errors"
	"github.com/gemi-dot/barangay-ims/internal/services"
)

// VoterHandler serves the voter registry endpoints.
type VoterHandler struct {
	service services.VoterService
	export  services.ExportService
}

// NewVoterHandler creates a new VoterHandler instance.
func NewVoterHandler(service services.VoterService, export services.ExportService) *VoterHandler {
	return &VoterHandler{
		service: service,
		export:  export,
	}
}

// VotersResponse wraps the flat voter list.
type VotersResponse struct {
	Voters interface{} `json:"voters"`
	Count  int         `json:"count"`
}

// List handles GET /api/v1/voters.
func (h *VoterHandler) List(c *gin.Context) {
	voters, err := h.service.Voters(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list voters", err)
		return
	}
	c.JSON(http.StatusOK, VotersResponse{Voters: voters, Count: len(voters)})
}

// ByPrecinct handles GET /api/v1/voters/by-precinct.
func (h *VoterHandler) ByPrecinct(c *gin.Context) {
	grouped, err := h.service.ByPrecinct(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to group voters by precinct", err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// PrecinctTotals handles GET /api/v1/voters/precinct-totals.
func (h *VoterHandler) PrecinctTotals(c *gin.Context) {
	chart, err := h.service.PrecinctTotals(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute precinct totals", err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// ByPrecinctExport handles GET /api/v1/voters/by-precinct/export.
// It returns the precinct-ordered voter list as an Excel workbook attachment.
func (h *VoterHandler) ByPrecinctExport(c *gin.Context) {
	data, err := h.export.VotersByPrecinctXLSX(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to export voters", err)
		return
	}

	filename := fmt.Sprintf("voters-by-precinct-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
