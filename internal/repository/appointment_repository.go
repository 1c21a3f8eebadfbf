package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// AppointmentRepository provides persistence for appointments.
type AppointmentRepository struct {
	db *sqlx.DB
}

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(db *sqlx.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const appointmentColumns = "id, patient_id, service_id, preferred_datetime, symptom, status, created_at, updated_at"

// List returns appointments with optional filtering and pagination.
func (r *AppointmentRepository) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	base := "FROM appointments WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.PatientID != "" {
		conditions = append(conditions, fmt.Sprintf("patient_id = $%d", len(args)+1))
		args = append(args, filter.PatientID)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("preferred_datetime >= $%d", len(args)+1))
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("preferred_datetime < $%d", len(args)+1))
		args = append(args, *filter.DateTo)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY preferred_datetime ASC LIMIT %d OFFSET %d", appointmentColumns, base, size, offset)
	var appointments []models.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	return appointments, total, nil
}

// ListBetween returns every appointment whose preferred time falls in
// [from, to). Used to build the conflict snapshot for a target date.
func (r *AppointmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	query := fmt.Sprintf("SELECT %s FROM appointments WHERE preferred_datetime >= $1 AND preferred_datetime < $2 ORDER BY preferred_datetime ASC", appointmentColumns)
	var appointments []models.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, from, to); err != nil {
		return nil, fmt.Errorf("list appointments between: %w", err)
	}
	return appointments, nil
}

// FindByID loads an appointment by id.
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	query := fmt.Sprintf("SELECT %s FROM appointments WHERE id = $1", appointmentColumns)
	var apt models.Appointment
	if err := r.db.GetContext(ctx, &apt, query, id); err != nil {
		return nil, err
	}
	return &apt, nil
}

// Create stores a new appointment record.
func (r *AppointmentRepository) Create(ctx context.Context, apt *models.Appointment) error {
	if apt.ID == "" {
		apt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if apt.CreatedAt.IsZero() {
		apt.CreatedAt = now
	}
	apt.UpdatedAt = now

	const query = `INSERT INTO appointments (id, patient_id, service_id, preferred_datetime, symptom, status, created_at, updated_at)
		VALUES (:id, :patient_id, :service_id, :preferred_datetime, :symptom, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, apt); err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

// Reschedule updates the preferred time and symptom of an appointment.
func (r *AppointmentRepository) Reschedule(ctx context.Context, apt *models.Appointment) error {
	apt.UpdatedAt = time.Now().UTC()
	const query = `UPDATE appointments SET preferred_datetime = :preferred_datetime, symptom = :symptom, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, apt); err != nil {
		return fmt.Errorf("reschedule appointment: %w", err)
	}
	return nil
}

// UpdateStatus transitions an appointment's workflow status.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	const query = `UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("no appointment %s", id)
	}
	return nil
}

// Delete removes an appointment by id. Returns sql.ErrNoRows when the id is
// unknown so callers can render a 404.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
