package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/KurtMante/clinic-ops-api/internal/availability"
	"github.com/KurtMante/clinic-ops-api/internal/models"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
)

type appointmentStore interface {
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, apt *models.Appointment) error
	Reschedule(ctx context.Context, apt *models.Appointment) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
}

type serviceCatalog interface {
	ListActive(ctx context.Context) ([]models.ClinicService, error)
	FindByID(ctx context.Context, id string) (*models.ClinicService, error)
}

type weekProvider interface {
	Week(ctx context.Context) (availability.Week, error)
}

// Booking decision rule labels, in evaluation order.
const (
	RulePastDateTime = "past_datetime"
	RuleSymptom      = "symptom"
	RuleAvailability = "availability"
	RuleConflict     = "conflict"
	RuleAccepted     = "accepted"
)

// BookingDecision is the outcome of running one booking request through the
// ordered rule chain. Reason is user-facing.
type BookingDecision struct {
	Accepted bool   `json:"accepted"`
	Rule     string `json:"rule"`
	Reason   string `json:"reason"`
}

// BookAppointmentRequest creates a new appointment. preferred_datetime is
// accepted as an alias for preferredDateTime.
type BookAppointmentRequest struct {
	PatientID              string            `json:"patientId" validate:"required"`
	ServiceID              string            `json:"serviceId" validate:"required"`
	PreferredDateTime      models.ClinicTime `json:"preferredDateTime"`
	PreferredDateTimeSnake models.ClinicTime `json:"preferred_datetime"`
	Symptom                string            `json:"symptom"`
}

// RescheduleAppointmentRequest moves an existing appointment. StaffView is set
// by the handler, never from the payload: staff reschedules check conflicts
// against the wider blocking set.
type RescheduleAppointmentRequest struct {
	PreferredDateTime      models.ClinicTime `json:"preferredDateTime"`
	PreferredDateTimeSnake models.ClinicTime `json:"preferred_datetime"`
	Symptom                string            `json:"symptom"`
	StaffView              bool              `json:"-"`
}

// DecideBookingRequest dry-runs the rule chain without writing anything.
type DecideBookingRequest struct {
	PreferredDateTime      models.ClinicTime `json:"preferredDateTime"`
	PreferredDateTimeSnake models.ClinicTime `json:"preferred_datetime"`
	Symptom                string            `json:"symptom"`
	ExcludeAppointmentID   string            `json:"excludeAppointmentId"`
	StaffView              bool              `json:"-"`
}

// BookingService runs every appointment write through the ordered rule chain:
// future datetime, non-empty symptom, schedule availability, slot conflict.
type BookingService struct {
	appointments appointmentStore
	catalog      serviceCatalog
	schedule     weekProvider
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	loc          *time.Location
	now          func() time.Time
}

// NewBookingService instantiates BookingService. metrics may be nil.
func NewBookingService(appointments appointmentStore, catalog serviceCatalog, schedule weekProvider, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, loc *time.Location) *BookingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = models.ClinicLocation()
	}
	return &BookingService{
		appointments: appointments,
		catalog:      catalog,
		schedule:     schedule,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
		loc:          loc,
		now:          time.Now,
	}
}

// Book validates the request, runs the rule chain against the target day and
// creates the appointment as Pending.
func (s *BookingService) Book(ctx context.Context, req BookAppointmentRequest) (*models.Appointment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid booking payload")
	}

	at := firstClinicTime(req.PreferredDateTime, req.PreferredDateTimeSnake)

	if _, err := s.catalog.FindByID(ctx, req.ServiceID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown service")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load service")
	}

	decision, err := s.runChain(ctx, at, req.Symptom, models.PatientOccupyingStatuses, "")
	if err != nil {
		return nil, err
	}
	if !decision.Accepted {
		return nil, s.rejection(decision)
	}

	apt := &models.Appointment{
		PatientID:         req.PatientID,
		ServiceID:         req.ServiceID,
		PreferredDateTime: at,
		Symptom:           strings.TrimSpace(req.Symptom),
		Status:            models.AppointmentPending,
	}
	if err := s.appointments.Create(ctx, apt); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create appointment")
	}
	s.logger.Info("appointment booked",
		zap.String("appointment_id", apt.ID),
		zap.String("patient_id", apt.PatientID),
		zap.String("preferred_datetime", at.String()))
	return apt, nil
}

// Reschedule moves an appointment to a new slot. The appointment's own slot
// never counts as a conflict against itself.
func (s *BookingService) Reschedule(ctx context.Context, id string, req RescheduleAppointmentRequest) (*models.Appointment, error) {
	apt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "appointment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load appointment")
	}

	at := firstClinicTime(req.PreferredDateTime, req.PreferredDateTimeSnake)
	symptom := strings.TrimSpace(req.Symptom)
	if symptom == "" {
		symptom = apt.Symptom
	}

	occupying := models.PatientOccupyingStatuses
	if req.StaffView {
		occupying = models.StaffOccupyingStatuses
	}

	decision, err := s.runChain(ctx, at, symptom, occupying, id)
	if err != nil {
		return nil, err
	}
	if !decision.Accepted {
		return nil, s.rejection(decision)
	}

	apt.PreferredDateTime = at
	apt.Symptom = symptom
	if err := s.appointments.Reschedule(ctx, apt); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reschedule appointment")
	}
	s.logger.Info("appointment rescheduled",
		zap.String("appointment_id", apt.ID),
		zap.String("preferred_datetime", at.String()))
	return apt, nil
}

// Decide dry-runs the rule chain so clients can pre-check a slot.
func (s *BookingService) Decide(ctx context.Context, req DecideBookingRequest) (*BookingDecision, error) {
	at := firstClinicTime(req.PreferredDateTime, req.PreferredDateTimeSnake)
	occupying := models.PatientOccupyingStatuses
	if req.StaffView {
		occupying = models.StaffOccupyingStatuses
	}
	decision, err := s.runChain(ctx, at, req.Symptom, occupying, req.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}
	return &decision, nil
}

// runChain fetches the schedule and the target day's appointments, then
// evaluates the ordered rules.
func (s *BookingService) runChain(ctx context.Context, at models.ClinicTime, symptom string, occupying []models.AppointmentStatus, excludeID string) (BookingDecision, error) {
	var appts []models.Appointment
	var week availability.Week

	// The first two rules need no data; only fetch once the datetime is sane.
	if !at.IsZero() && at.Time.After(s.now()) {
		var err error
		week, err = s.schedule.Week(ctx)
		if err != nil {
			return BookingDecision{}, err
		}
		from, to := s.dayRange(at.Time)
		appts, err = s.appointments.ListBetween(ctx, from, to)
		if err != nil {
			return BookingDecision{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load appointments")
		}
	}

	decision := s.decide(at, symptom, week, appts, occupying, excludeID)
	if s.metrics != nil {
		s.metrics.RecordBookingDecision(decision.Accepted, decision.Rule)
	}
	return decision, nil
}

// decide is the pure rule chain. Rules run in a fixed order and the first
// rejection wins.
func (s *BookingService) decide(at models.ClinicTime, symptom string, week availability.Week, appts []models.Appointment, occupying []models.AppointmentStatus, excludeID string) BookingDecision {
	if at.IsZero() || !at.Time.After(s.now()) {
		return BookingDecision{Rule: RulePastDateTime, Reason: "Please select a valid future date/time."}
	}
	if strings.TrimSpace(symptom) == "" {
		return BookingDecision{Rule: RuleSymptom, Reason: "Please describe your symptoms or reason for visit."}
	}

	verdict := availability.EvaluateDate(at.Time, week, s.loc)
	if !verdict.Available {
		return BookingDecision{Rule: RuleAvailability, Reason: verdict.Reason}
	}

	clock := at.In(s.loc).Format("15:04")
	if availability.IsOccupied(s.loc, at.Time, clock, appts, occupying, excludeID) {
		return BookingDecision{Rule: RuleConflict, Reason: "This slot is already booked. Please choose another time."}
	}

	return BookingDecision{Accepted: true, Rule: RuleAccepted, Reason: verdict.Reason}
}

// rejection maps a rejected decision to the typed error the handler renders.
func (s *BookingService) rejection(decision BookingDecision) error {
	switch decision.Rule {
	case RuleAvailability:
		return appErrors.Clone(appErrors.ErrUnavailable, decision.Reason)
	case RuleConflict:
		return appErrors.Clone(appErrors.ErrSlotTaken, decision.Reason)
	default:
		return appErrors.Clone(appErrors.ErrValidation, decision.Reason)
	}
}

// dayRange bounds the clinic-local calendar day containing t.
func (s *BookingService) dayRange(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.Add(24 * time.Hour)
}

func firstClinicTime(values ...models.ClinicTime) models.ClinicTime {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return models.ClinicTime{}
}
