package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	"github.com/KurtMante/clinic-ops-api/internal/service"
)

func newExportHandlerFixture(store *appointmentStoreMock) *ExportHandler {
	svc := service.NewExportService(store, catalogMock{}, nil, models.ClinicLocation())
	return NewExportHandler(svc)
}

func TestExportHandlerCSV(t *testing.T) {
	at, err := models.ParseClinicTime(tomorrowAt(9))
	require.NoError(t, err)
	store := &appointmentStoreMock{appointments: map[string]models.Appointment{
		"apt-1": {ID: "apt-1", PatientID: "patient-1", ServiceID: "svc-1", Symptom: "cough",
			Status: models.AppointmentPending, PreferredDateTime: at},
	}}
	handler := newExportHandlerFixture(store)

	w := performJSON(t, handler.DaySheet, http.MethodGet,
		"/appointments/export?date="+tomorrowDate()+"&format=csv", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "day-sheet-"+tomorrowDate()+".csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Time,Patient,Service,Symptom,Status"))
	assert.Contains(t, w.Body.String(), "09:00,patient-1,General Consultation,cough,Pending")
}

func TestExportHandlerMissingDate(t *testing.T) {
	handler := newExportHandlerFixture(&appointmentStoreMock{})

	w := performJSON(t, handler.DaySheet, http.MethodGet, "/appointments/export", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHandlerUnknownFormat(t *testing.T) {
	handler := newExportHandlerFixture(&appointmentStoreMock{})

	w := performJSON(t, handler.DaySheet, http.MethodGet,
		"/appointments/export?date="+tomorrowDate()+"&format=xlsx", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
