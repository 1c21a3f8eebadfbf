package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestScheduleRepositoryListWeek(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	start, end := "08:00:00", "17:00:00"
	rows := sqlmock.NewRows([]string{"weekday", "status", "start_time", "end_time", "notes", "created_at", "updated_at"}).
		AddRow(0, "AVAILABLE", start, end, "", time.Now(), time.Now()).
		AddRow(6, "DAY_OFF", nil, nil, "Closed Sundays", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT weekday, status, start_time, end_time, notes, created_at, updated_at FROM weekly_schedule ORDER BY weekday ASC")).
		WillReturnRows(rows)

	entries, err := repo.ListWeek(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Weekday)
	assert.Equal(t, "AVAILABLE", entries[0].Status)
	assert.Nil(t, entries[1].StartTime)
	assert.Equal(t, "Closed Sundays", entries[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryFindByWeekday(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"weekday", "status", "start_time", "end_time", "notes", "created_at", "updated_at"}).
		AddRow(2, "HALF_DAY", "08:00:00", "12:00:00", "Morning only", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT weekday, status, start_time, end_time, notes, created_at, updated_at FROM weekly_schedule WHERE weekday = $1")).
		WithArgs(2).
		WillReturnRows(rows)

	entry, err := repo.FindByWeekday(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "HALF_DAY", entry.Status)
	start, end, ok := entry.Window()
	assert.True(t, ok)
	assert.Equal(t, "08:00", start)
	assert.Equal(t, "12:00", end)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("INSERT INTO weekly_schedule").
		WithArgs(0, "AVAILABLE", sqlmock.AnyArg(), sqlmock.AnyArg(), "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	start, end := "08:00", "17:00"
	entry := &models.WeeklySchedule{Weekday: 0, Status: "AVAILABLE", StartTime: &start, EndTime: &end}
	require.NoError(t, repo.Upsert(context.Background(), entry))
	assert.False(t, entry.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("UPDATE weekly_schedule SET status").
		WithArgs("DAY_OFF", sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 5, "DAY_OFF"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryUpdateStatusMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("UPDATE weekly_schedule SET status").
		WithArgs("DAY_OFF", sqlmock.AnyArg(), 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Error(t, repo.UpdateStatus(context.Background(), 9, "DAY_OFF"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
