package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/gemi-dot/barangay-ims/internal/errors"
	"github.com/gemi-dot/barangay-ims/internal/middleware"
	"github.com/gemi-dot/barangay-ims/internal/repository"
	"github.com/gemi-dot/barangay-ims/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ResidentHandler serves the resident directory endpoints.
type ResidentHandler struct {
	service services.ResidentService
	export  services.ExportService
}

// NewResidentHandler creates a new ResidentHandler instance.
func NewResidentHandler(service services.ResidentService, export services.ExportService) *ResidentHandler {
	return &ResidentHandler{
		service: service,
		export:  export,
	}
}

// DirectoryRequest represents the optional query parameters for the resident
// directory. A missing or blank parameter means "no filter applied".
type DirectoryRequest struct {
	Search string `form:"search"`
	Zone   string `form:"zone"`
	Gender string `form:"gender" binding:"omitempty,oneof=M F"`
}

// Directory handles GET /api/v1/residents.
// It lists active residents with optional search, zone, and gender filters.
func (h *ResidentHandler) Directory(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req DirectoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	if log != nil {
		log.Info("Processing resident directory request", map[string]interface{}{
			"search": req.Search,
			"zone":   req.Zone,
			"gender": req.Gender,
		})
	}

	directory, err := h.service.Directory(c.Request.Context(), repository.ResidentFilter{
		Search: req.Search,
		Zone:   req.Zone,
		Gender: req.Gender,
	})
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list residents", err)
		return
	}

	c.JSON(http.StatusOK, directory)
}

// DirectoryExport handles GET /api/v1/residents/export.
// It returns the filtered directory as an Excel workbook attachment.
func (h *ResidentHandler) DirectoryExport(c *gin.Context) {
	var req DirectoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	data, err := h.export.ResidentDirectoryXLSX(c.Request.Context(), repository.ResidentFilter{
		Search: req.Search,
		Zone:   req.Zone,
		Gender: req.Gender,
	})
	if err != nil {
		apierrors.InternalServerError(c, "Failed to export residents", err)
		return
	}

	filename := fmt.Sprintf("residents-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
