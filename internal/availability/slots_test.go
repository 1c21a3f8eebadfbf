package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

func strptr(s string) *string { return &s }

func entryWith(status, start, end string) *models.WeeklySchedule {
	e := &models.WeeklySchedule{Weekday: 0, Status: status}
	if start != "" {
		e.StartTime = strptr(start)
	}
	if end != "" {
		e.EndTime = strptr(end)
	}
	return e
}

// 2024-03-04 is a Monday.
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func TestGenerateSlotsFullDay(t *testing.T) {
	slots := GenerateSlots(entryWith("AVAILABLE", "08:00", "17:00"), monday, time.UTC, 60)
	require.Len(t, slots, 9)
	assert.Equal(t, Slot{Date: "2024-03-04", Start: "08:00", End: "09:00"}, slots[0])
	assert.Equal(t, Slot{Date: "2024-03-04", Start: "16:00", End: "17:00"}, slots[8])
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].Start, slots[i].Start)
	}
}

func TestGenerateSlotsSubStepWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots(entryWith("AVAILABLE", "08:00", "08:30"), monday, time.UTC, 60))
}

func TestGenerateSlotsNeverEmitsPartialFinalSlot(t *testing.T) {
	slots := GenerateSlots(entryWith("AVAILABLE", "08:00", "16:30"), monday, time.UTC, 60)
	require.NotEmpty(t, slots)
	assert.Equal(t, "16:00", slots[len(slots)-1].End)
}

func TestGenerateSlotsBlockedStatuses(t *testing.T) {
	for _, status := range []string{"DAY_OFF", "UNAVAILABLE", "off", "DayOff", "day off"} {
		assert.Empty(t, GenerateSlots(entryWith(status, "08:00", "17:00"), monday, time.UTC, 60), "status %q", status)
	}
}

func TestGenerateSlotsMissingEntryOrWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots(nil, monday, time.UTC, 60))
	assert.Empty(t, GenerateSlots(entryWith("AVAILABLE", "", "17:00"), monday, time.UTC, 60))
	assert.Empty(t, GenerateSlots(entryWith("AVAILABLE", "08:00", ""), monday, time.UTC, 60))
	assert.Empty(t, GenerateSlots(entryWith("HALF_DAY", "", ""), monday, time.UTC, 60))
}

func TestGenerateSlotsTruncatesSeconds(t *testing.T) {
	slots := GenerateSlots(entryWith("HALF_DAY", "08:00:00", "12:00:00"), monday, time.UTC, 60)
	require.Len(t, slots, 4)
	assert.Equal(t, "08:00", slots[0].Start)
	assert.Equal(t, "12:00", slots[3].End)
}

func TestSlotsForDateResolvesWeekday(t *testing.T) {
	week := Week{
		{Weekday: 0, Status: "AVAILABLE", StartTime: strptr("09:00"), EndTime: strptr("11:00")},
		{Weekday: 6, Status: "DAY_OFF"},
	}
	assert.Len(t, SlotsForDate(week, monday, time.UTC, 60), 2)

	sunday := monday.AddDate(0, 0, -1)
	assert.Empty(t, SlotsForDate(week, sunday, time.UTC, 60))

	tuesday := monday.AddDate(0, 0, 1)
	assert.Empty(t, SlotsForDate(week, tuesday, time.UTC, 60), "no entry means no slots")
}

func TestGeneratedSlotsAlwaysEvaluateAvailable(t *testing.T) {
	entries := []*models.WeeklySchedule{
		entryWith("AVAILABLE", "08:00", "17:00"),
		entryWith("HALF_DAY", "08:30", "12:30"),
		entryWith("AVAILABLE", "00:00", "23:00"),
	}
	for _, entry := range entries {
		for _, slot := range GenerateSlots(entry, monday, time.UTC, 60) {
			mins, err := ParseClock(slot.Start)
			require.NoError(t, err)
			at := monday.Add(time.Duration(mins) * time.Minute)
			decision := Evaluate(at, entry, time.UTC)
			assert.True(t, decision.Available, "slot %s of %s should be available: %s", slot.Start, entry.Status, decision.Reason)
		}
	}
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, mins)

	mins, err = ParseClock("17:00:00")
	require.NoError(t, err)
	assert.Equal(t, 1020, mins)

	for _, bad := range []string{"", "8", "25:00", "08:61", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "clock %q", bad)
	}
}

func TestFormatClockZeroPads(t *testing.T) {
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "00:00", FormatClock(0))
}
