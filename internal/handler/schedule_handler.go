package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KurtMante/clinic-ops-api/internal/service"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
	"github.com/KurtMante/clinic-ops-api/pkg/response"
)

// ScheduleHandler manages the weekly schedule endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// List godoc
// @Summary List the weekly schedule
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	entries, err := h.service.GetWeek(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Upsert godoc
// @Summary Create or replace one weekday's schedule entry
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body service.UpsertScheduleRequest true "Schedule entry"
// @Success 200 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Upsert(c *gin.Context) {
	var req service.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// UpdateDay godoc
// @Summary Replace the schedule entry for a weekday
// @Tags Schedule
// @Accept json
// @Produce json
// @Param weekday path int true "Weekday (0 = Monday)"
// @Param payload body service.UpsertScheduleRequest true "Schedule entry"
// @Success 200 {object} response.Envelope
// @Router /schedule/{weekday} [put]
func (h *ScheduleHandler) UpdateDay(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "weekday must be a number"))
		return
	}
	var req service.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.UpdateDay(c.Request.Context(), weekday, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// UpdateStatus godoc
// @Summary Change only a weekday's status
// @Tags Schedule
// @Accept json
// @Produce json
// @Param weekday path int true "Weekday (0 = Monday)"
// @Param payload body service.UpdateScheduleStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /schedule/{weekday}/status [put]
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "weekday must be a number"))
		return
	}
	var req service.UpdateScheduleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.UpdateStatus(c.Request.Context(), weekday, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}
