package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
)

func newAppointmentFixture() (*AppointmentService, *mockAppointmentStore) {
	store := &mockAppointmentStore{appointments: map[string]models.Appointment{
		"apt-1": {ID: "apt-1", PatientID: "patient-1", Status: models.AppointmentPending, PreferredDateTime: clinicAt(4, 9, 0)},
		"apt-2": {ID: "apt-2", PatientID: "patient-2", Status: models.AppointmentCompleted, PreferredDateTime: clinicAt(4, 10, 0)},
	}}
	return NewAppointmentService(store, nil), store
}

func TestAppointmentListRejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := newAppointmentFixture()

	_, _, err := svc.List(context.Background(), models.AppointmentFilter{Status: "Snoozed"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAppointmentGet(t *testing.T) {
	svc, _ := newAppointmentFixture()

	apt, err := svc.Get(context.Background(), "apt-1")
	require.NoError(t, err)
	assert.Equal(t, "patient-1", apt.PatientID)

	_, err = svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAppointmentUpdateStatus(t *testing.T) {
	svc, store := newAppointmentFixture()

	apt, err := svc.UpdateStatus(context.Background(), "apt-1", UpdateAppointmentStatusRequest{Status: "Accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentAccepted, apt.Status)
	assert.Equal(t, models.AppointmentAccepted, store.statuses["apt-1"])
}

func TestAppointmentUpdateStatusRejectsUnknownLabel(t *testing.T) {
	svc, store := newAppointmentFixture()

	_, err := svc.UpdateStatus(context.Background(), "apt-1", UpdateAppointmentStatusRequest{Status: "OnHold"})
	require.Error(t, err)
	assert.Empty(t, store.statuses)
}

func TestAppointmentUpdateStatusFinalized(t *testing.T) {
	svc, _ := newAppointmentFixture()

	_, err := svc.UpdateStatus(context.Background(), "apt-2", UpdateAppointmentStatusRequest{Status: "Pending"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAppointmentCancel(t *testing.T) {
	svc, store := newAppointmentFixture()

	apt, err := svc.Cancel(context.Background(), "apt-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, apt.Status)
	assert.Equal(t, models.AppointmentCancelled, store.statuses["apt-1"])
}

func TestAppointmentDelete(t *testing.T) {
	svc, store := newAppointmentFixture()

	require.NoError(t, svc.Delete(context.Background(), "apt-1"))
	assert.Equal(t, []string{"apt-1"}, store.deleted)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
