package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	"github.com/KurtMante/clinic-ops-api/internal/service"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
	"github.com/KurtMante/clinic-ops-api/pkg/response"
)

// AvailabilityHandler serves slot listings and availability verdicts.
type AvailabilityHandler struct {
	service *service.AvailabilityService
}

// NewAvailabilityHandler constructs handler.
func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: svc}
}

// Slots godoc
// @Summary List a day's bookable slots with occupancy
// @Tags Availability
// @Produce json
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Param view query string false "staff widens the blocking statuses"
// @Success 200 {object} response.Envelope
// @Router /availability/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
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
	slots, err := h.service.Slots(c.Request.Context(), date, c.Query("view") == "staff")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}

// Evaluate godoc
// @Summary Evaluate availability for one moment
// @Tags Availability
// @Produce json
// @Param datetime query string true "Target moment (YYYY-MM-DD HH:MM:SS)"
// @Success 200 {object} response.Envelope
// @Router /availability/evaluate [get]
func (h *AvailabilityHandler) Evaluate(c *gin.Context) {
	raw := c.Query("datetime")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "datetime is required"))
		return
	}
	at, err := models.ParseClinicTime(raw)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unrecognized datetime"))
		return
	}
	decision, err := h.service.Evaluate(c.Request.Context(), at)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, decision, nil)
}
