package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/KurtMante/clinic-ops-api/internal/service"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
	"github.com/KurtMante/clinic-ops-api/pkg/response"
)

// ExportHandler streams day-sheet exports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// DaySheet godoc
// @Summary Export a day sheet
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /appointments/export [get]
func (h *ExportHandler) DaySheet(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date is required"))
		return
	}
	date, err := parseDateParam(raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	result, err := h.service.DaySheet(c.Request.Context(), date, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Data)
}
