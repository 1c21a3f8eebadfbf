package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	"github.com/KurtMante/clinic-ops-api/internal/service"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
	"github.com/KurtMante/clinic-ops-api/pkg/response"
)

// AppointmentHandler manages appointment booking and workflow endpoints.
type AppointmentHandler struct {
	booking      *service.BookingService
	appointments *service.AppointmentService
}

// NewAppointmentHandler constructs handler.
func NewAppointmentHandler(booking *service.BookingService, appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{booking: booking, appointments: appointments}
}

// List godoc
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param patientId query string false "Filter by patient"
// @Param status query string false "Filter by status"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter models.AppointmentFilter
	filter.PatientID = c.Query("patientId")
	filter.Status = c.Query("status")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = limit
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseDateParam(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDateParam(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		end := to.Add(24 * time.Hour)
		filter.DateTo = &end
	}

	appts, total, err := h.appointments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	response.JSON(c, http.StatusOK, appts, pagination)
}

// Get godoc
// @Summary Get one appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Envelope
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	apt, err := h.appointments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apt, nil)
}

// Book godoc
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param payload body service.BookAppointmentRequest true "Booking payload"
// @Success 201 {object} response.Envelope
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req service.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	apt, err := h.booking.Book(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, apt)
}

// Reschedule godoc
// @Summary Reschedule an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param view query string false "staff widens the blocking statuses"
// @Param payload body service.RescheduleAppointmentRequest true "Reschedule payload"
// @Success 200 {object} response.Envelope
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req service.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.StaffView = c.Query("view") == "staff"
	apt, err := h.booking.Reschedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apt, nil)
}

// Decide godoc
// @Summary Dry-run the booking rules for a slot
// @Tags Appointments
// @Accept json
// @Produce json
// @Param view query string false "staff widens the blocking statuses"
// @Param payload body service.DecideBookingRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Router /appointments/decide [post]
func (h *AppointmentHandler) Decide(c *gin.Context) {
	var req service.DecideBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.StaffView = c.Query("view") == "staff"
	decision, err := h.booking.Decide(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, decision, nil)
}

// UpdateStatus godoc
// @Summary Change an appointment's workflow status
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param payload body service.UpdateAppointmentStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	apt, err := h.appointments.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apt, nil)
}

// Delete godoc
// @Summary Cancel an appointment
// @Description Cancels by default so the record stays on file; hard=true removes it.
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Param hard query bool false "Remove the record instead of cancelling"
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if c.Query("hard") == "true" {
		if err := h.appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
			response.Error(c, err)
			return
		}
		response.NoContent(c)
		return
	}
	apt, err := h.appointments.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apt, nil)
}

// parseDateParam accepts a YYYY-MM-DD query value in the clinic zone.
func parseDateParam(raw string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", raw, models.ClinicLocation())
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "dates must be YYYY-MM-DD")
	}
	return t, nil
}
