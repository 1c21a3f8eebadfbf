package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
)

// UpdateAppointmentStatusRequest moves an appointment along the workflow.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AppointmentService covers the non-booking appointment operations: listing,
// lookup, workflow status changes and removal. All writes flow through the
// same store the booking chain reads, so occupancy stays consistent.
type AppointmentService struct {
	repo   appointmentStore
	logger *zap.Logger
}

func NewAppointmentService(repo appointmentStore, logger *zap.Logger) *AppointmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentService{repo: repo, logger: logger}
}

// List returns appointments matching the filter plus the unpaginated total.
func (s *AppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	if filter.Status != "" && !models.ValidAppointmentStatus(filter.Status) {
		return nil, 0, appErrors.Clone(appErrors.ErrValidation, "unknown appointment status")
	}
	appts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list appointments")
	}
	return appts, total, nil
}

// Get loads one appointment by ID.
func (s *AppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	apt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "appointment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load appointment")
	}
	return apt, nil
}

// UpdateStatus applies a workflow status change. Terminal appointments
// (Cancelled, Completed) can no longer move.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, req UpdateAppointmentStatusRequest) (*models.Appointment, error) {
	if !models.ValidAppointmentStatus(req.Status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown appointment status")
	}

	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if apt.Status == models.AppointmentCancelled || apt.Status == models.AppointmentCompleted {
		return nil, appErrors.Clone(appErrors.ErrConflict, "appointment is already finalized")
	}

	status := models.AppointmentStatus(req.Status)
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update appointment status")
	}
	s.logger.Info("appointment status changed",
		zap.String("appointment_id", id),
		zap.String("from", string(apt.Status)),
		zap.String("to", string(status)))
	apt.Status = status
	return apt, nil
}

// Cancel is the patient-facing withdrawal: the appointment stays on record but
// stops blocking its slot.
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	return s.UpdateStatus(ctx, id, UpdateAppointmentStatusRequest{Status: string(models.AppointmentCancelled)})
}

// Delete removes an appointment entirely.
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "appointment not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete appointment")
	}
	s.logger.Info("appointment deleted", zap.String("appointment_id", id))
	return nil
}
