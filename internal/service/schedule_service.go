package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/KurtMante/clinic-ops-api/internal/availability"
	"github.com/KurtMante/clinic-ops-api/internal/models"
	"github.com/KurtMante/clinic-ops-api/internal/repository"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
)

type weeklyScheduleRepository interface {
	ListWeek(ctx context.Context) ([]models.WeeklySchedule, error)
	FindByWeekday(ctx context.Context, weekday int) (*models.WeeklySchedule, error)
	Upsert(ctx context.Context, entry *models.WeeklySchedule) error
	UpdateStatus(ctx context.Context, weekday int, status string) error
}

type scheduleCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UpsertScheduleRequest writes one weekday's entry. Both snake_case and
// camelCase field names are accepted for the window and notes, matching what
// the legacy clients send.
type UpsertScheduleRequest struct {
	Weekday        *int    `json:"weekday" validate:"required,min=0,max=6"`
	Status         string  `json:"status" validate:"required"`
	StartTime      *string `json:"startTime"`
	StartTimeSnake *string `json:"start_time"`
	EndTime        *string `json:"endTime"`
	EndTimeSnake   *string `json:"end_time"`
	Notes          *string `json:"notes"`
	Note           *string `json:"note"`
}

// UpdateScheduleStatusRequest toggles only a weekday's status.
type UpdateScheduleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ScheduleService coordinates weekly schedule administration and serves the
// schedule snapshot consumed by the booking engine.
type ScheduleService struct {
	repo      weeklyScheduleRepository
	cache     scheduleCache
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewScheduleService instantiates ScheduleService. cache and metrics may be
// nil; the service then always reads through to the repository.
func NewScheduleService(repo weeklyScheduleRepository, cache scheduleCache, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cacheTTL time.Duration) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ScheduleService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, cacheTTL: cacheTTL}
}

// Week returns the weekly schedule snapshot, cache-first. The snapshot is
// cached and invalidated wholesale; a stale cache never outlives a write.
func (s *ScheduleService) Week(ctx context.Context) (availability.Week, error) {
	if s.cache != nil {
		start := time.Now()
		var cached []models.WeeklySchedule
		err := s.cache.Get(ctx, repository.ScheduleCacheKey, &cached)
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		}
		if err == nil {
			return availability.Week(cached), nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("schedule cache read failed", zap.Error(err))
		}
	}

	entries, err := s.repo.ListWeek(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load weekly schedule")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, repository.ScheduleCacheKey, entries, s.cacheTTL); err != nil {
			s.logger.Warn("schedule cache write failed", zap.Error(err))
		}
	}
	return availability.Week(entries), nil
}

// GetWeek returns the entries for API listing, ordered by weekday.
func (s *ScheduleService) GetWeek(ctx context.Context) ([]models.WeeklySchedule, error) {
	week, err := s.Week(ctx)
	if err != nil {
		return nil, err
	}
	return []models.WeeklySchedule(week), nil
}

// Upsert validates and writes one weekday's schedule entry.
func (s *ScheduleService) Upsert(ctx context.Context, req UpsertScheduleRequest) (*models.WeeklySchedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	entry, err := s.buildEntry(*req.Weekday, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	s.invalidate(ctx)
	return entry, nil
}

// UpdateDay replaces the entry for the weekday taken from the route.
func (s *ScheduleService) UpdateDay(ctx context.Context, weekday int, req UpsertScheduleRequest) (*models.WeeklySchedule, error) {
	if weekday < 0 || weekday > 6 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "weekday must be between 0 (Monday) and 6 (Sunday)")
	}
	req.Weekday = &weekday
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	entry, err := s.buildEntry(weekday, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	s.invalidate(ctx)
	return entry, nil
}

// UpdateStatus changes only a weekday's status label.
func (s *ScheduleService) UpdateStatus(ctx context.Context, weekday int, req UpdateScheduleStatusRequest) (*models.WeeklySchedule, error) {
	if weekday < 0 || weekday > 6 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "weekday must be between 0 (Monday) and 6 (Sunday)")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}
	if availability.NormalizeStatus(req.Status) == availability.StatusUnknown {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unrecognized schedule status")
	}

	if err := s.repo.UpdateStatus(ctx, weekday, req.Status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update schedule status")
	}
	s.invalidate(ctx)

	entry, err := s.repo.FindByWeekday(ctx, weekday)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload schedule entry")
	}
	return entry, nil
}

// buildEntry normalizes the request's field variants and enforces the window
// rule: statuses implying an active day require start and end times, blocked
// statuses store none.
func (s *ScheduleService) buildEntry(weekday int, req UpsertScheduleRequest) (*models.WeeklySchedule, error) {
	status := availability.NormalizeStatus(req.Status)
	if status == availability.StatusUnknown {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unrecognized schedule status")
	}

	start := coalesce(req.StartTime, req.StartTimeSnake)
	end := coalesce(req.EndTime, req.EndTimeSnake)
	notes := ""
	if n := coalesce(req.Notes, req.Note); n != nil {
		notes = *n
	}

	entry := &models.WeeklySchedule{Weekday: weekday, Status: req.Status, Notes: notes}

	if status.HasWindow() {
		if start == nil || end == nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "start and end times are required for this status")
		}
		startMins, err := availability.ParseClock(*start)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "malformed start time")
		}
		endMins, err := availability.ParseClock(*end)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "malformed end time")
		}
		if endMins <= startMins {
			return nil, appErrors.Clone(appErrors.ErrValidation, "end time must be after start time")
		}
		entry.StartTime = start
		entry.EndTime = end
	}

	return entry, nil
}

func (s *ScheduleService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, repository.ScheduleCacheKey); err != nil {
		s.logger.Warn("schedule cache invalidation failed", zap.Error(err))
	}
}

func coalesce(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
