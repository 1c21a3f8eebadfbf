package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	"github.com/KurtMante/clinic-ops-api/internal/service"
)

func newAvailabilityHandlerFixture(store *appointmentStoreMock) *AvailabilityHandler {
	schedule := newScheduleService(&scheduleRepoMock{entries: fullWeek()})
	svc := service.NewAvailabilityService(schedule, store, nil, models.ClinicLocation(), 60)
	return NewAvailabilityHandler(svc)
}

func tomorrowDate() string {
	d := time.Now().In(models.ClinicLocation()).AddDate(0, 0, 1)
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

func TestAvailabilityHandlerSlots(t *testing.T) {
	at, err := models.ParseClinicTime(tomorrowAt(9))
	require.NoError(t, err)
	store := &appointmentStoreMock{appointments: map[string]models.Appointment{
		"apt-1": {ID: "apt-1", Status: models.AppointmentPending, PreferredDateTime: at},
	}}
	handler := newAvailabilityHandlerFixture(store)

	w := performJSON(t, handler.Slots, http.MethodGet, "/availability/slots?date="+tomorrowDate(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	slots, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, slots, 9)

	second, ok := slots[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "09:00", second["startTime"])
	assert.Equal(t, true, second["occupied"])
}

func TestAvailabilityHandlerSlotsMissingDate(t *testing.T) {
	handler := newAvailabilityHandlerFixture(&appointmentStoreMock{})

	w := performJSON(t, handler.Slots, http.MethodGet, "/availability/slots", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityHandlerEvaluate(t *testing.T) {
	handler := newAvailabilityHandlerFixture(&appointmentStoreMock{})

	w := performJSON(t, handler.Evaluate, http.MethodGet,
		"/availability/evaluate?datetime="+tomorrowDate()+"T10:00", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	decision, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, decision["available"])
}

func TestAvailabilityHandlerEvaluateBadDatetime(t *testing.T) {
	handler := newAvailabilityHandlerFixture(&appointmentStoreMock{})

	w := performJSON(t, handler.Evaluate, http.MethodGet, "/availability/evaluate?datetime=soon", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
