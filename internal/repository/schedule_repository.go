package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// ScheduleRepository provides persistence for the weekly doctor schedule.
// The table holds at most one row per canonical weekday (Monday=0).
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = "weekday, status, start_time, end_time, notes, created_at, updated_at"

// ListWeek returns every weekly schedule entry ordered by weekday.
func (r *ScheduleRepository) ListWeek(ctx context.Context) ([]models.WeeklySchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM weekly_schedule ORDER BY weekday ASC", scheduleColumns)
	var entries []models.WeeklySchedule
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list weekly schedule: %w", err)
	}
	return entries, nil
}

// FindByWeekday loads a single weekday's entry.
func (r *ScheduleRepository) FindByWeekday(ctx context.Context, weekday int) (*models.WeeklySchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM weekly_schedule WHERE weekday = $1", scheduleColumns)
	var entry models.WeeklySchedule
	if err := r.db.GetContext(ctx, &entry, query, weekday); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert writes a weekday's entry, replacing any existing row for that
// weekday. The weekday uniqueness invariant lives in the primary key.
func (r *ScheduleRepository) Upsert(ctx context.Context, entry *models.WeeklySchedule) error {
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	const query = `INSERT INTO weekly_schedule (weekday, status, start_time, end_time, notes, created_at, updated_at)
		VALUES (:weekday, :status, :start_time, :end_time, :notes, :created_at, :updated_at)
		ON CONFLICT (weekday) DO UPDATE SET
			status = EXCLUDED.status,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("upsert weekly schedule: %w", err)
	}
	return nil
}

// UpdateStatus changes only the status label of a weekday.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, weekday int, status string) error {
	const query = `UPDATE weekly_schedule SET status = $1, updated_at = $2 WHERE weekday = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), weekday)
	if err != nil {
		return fmt.Errorf("update schedule status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("no schedule row for weekday %d", weekday)
	}
	return nil
}
