package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
)

func newExportFixture() *ExportService {
	store := &mockAppointmentStore{appointments: map[string]models.Appointment{
		"apt-2": {ID: "apt-2", PatientID: "patient-2", ServiceID: "svc-1", Symptom: "fever",
			Status: models.AppointmentAccepted, PreferredDateTime: clinicAt(4, 10, 0)},
		"apt-1": {ID: "apt-1", PatientID: "patient-1", ServiceID: "svc-1", Symptom: "cough",
			Status: models.AppointmentPending, PreferredDateTime: clinicAt(4, 9, 0)},
		"other-day": {ID: "other-day", PatientID: "patient-3", ServiceID: "svc-1", Symptom: "rash",
			Status: models.AppointmentPending, PreferredDateTime: clinicAt(5, 9, 0)},
	}}
	catalog := &mockServiceCatalog{services: map[string]models.ClinicService{
		"svc-1": {ID: "svc-1", Name: "General Consultation"},
	}}
	return NewExportService(store, catalog, nil, manila)
}

func TestDaySheetCSV(t *testing.T) {
	svc := newExportFixture()

	result, err := svc.DaySheet(context.Background(), mondayMorning, ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "day-sheet-2024-03-04.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Time,Patient,Service,Symptom,Status", lines[0])
	// Rows sorted by time; the other day's appointment is excluded.
	assert.Equal(t, "09:00,patient-1,General Consultation,cough,Pending", lines[1])
	assert.Equal(t, "10:00,patient-2,General Consultation,fever,Accepted", lines[2])
}

func TestDaySheetPDF(t *testing.T) {
	svc := newExportFixture()

	result, err := svc.DaySheet(context.Background(), mondayMorning, ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "day-sheet-2024-03-04.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestDaySheetUnknownFormat(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.DaySheet(context.Background(), mondayMorning, ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDaySheetFallsBackToServiceID(t *testing.T) {
	store := &mockAppointmentStore{appointments: map[string]models.Appointment{
		"apt-1": {ID: "apt-1", PatientID: "patient-1", ServiceID: "svc-unknown", Symptom: "cough",
			Status: models.AppointmentPending, PreferredDateTime: clinicAt(4, 9, 0)},
	}}
	svc := NewExportService(store, &mockServiceCatalog{}, nil, manila)

	result, err := svc.DaySheet(context.Background(), mondayMorning, ExportCSV)
	require.NoError(t, err)
	assert.Contains(t, string(result.Data), "svc-unknown")
}
