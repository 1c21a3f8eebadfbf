package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

func TestAppointmentRepositoryListByPatient(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppointmentRepository(db)

	when := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "patient_id", "service_id", "preferred_datetime", "symptom", "status", "created_at", "updated_at"}).
		AddRow("a1", "p1", "s1", when, "Fever", "Pending", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, patient_id, service_id, preferred_datetime, symptom, status, created_at, updated_at FROM appointments WHERE 1=1 AND patient_id = $1 ORDER BY preferred_datetime ASC LIMIT 50 OFFSET 0")).
		WithArgs("p1").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM appointments WHERE 1=1 AND patient_id = $1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.AppointmentFilter{PatientID: "p1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, models.AppointmentPending, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryListBetween(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppointmentRepository(db)

	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	rows := sqlmock.NewRows([]string{"id", "patient_id", "service_id", "preferred_datetime", "symptom", "status", "created_at", "updated_at"}).
		AddRow("a1", "p1", "s1", from.Add(9*time.Hour), "Checkup", "Accepted", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, patient_id, service_id, preferred_datetime, symptom, status, created_at, updated_at FROM appointments WHERE preferred_datetime >= $1 AND preferred_datetime < $2 ORDER BY preferred_datetime ASC")).
		WithArgs(from, to).
		WillReturnRows(rows)

	list, err := repo.ListBetween(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a1", list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppointmentRepository(db)

	mock.ExpectExec("INSERT INTO appointments").
		WillReturnResult(sqlmock.NewResult(1, 1))

	apt := &models.Appointment{
		PatientID:         "p1",
		ServiceID:         "s1",
		PreferredDateTime: models.NewClinicTime(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)),
		Symptom:           "Fever",
		Status:            models.AppointmentPending,
	}
	require.NoError(t, repo.Create(context.Background(), apt))
	assert.NotEmpty(t, apt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryRescheduleAndStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppointmentRepository(db)

	mock.ExpectExec("UPDATE appointments SET preferred_datetime").
		WillReturnResult(sqlmock.NewResult(0, 1))

	apt := &models.Appointment{
		ID:                "a1",
		PreferredDateTime: models.NewClinicTime(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)),
		Symptom:           "Follow up",
	}
	require.NoError(t, repo.Reschedule(context.Background(), apt))

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.AppointmentAccepted, sqlmock.AnyArg(), "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "a1", models.AppointmentAccepted))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppointmentRepository(db)

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "a1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAppointmentRepository(db)

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
