package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// DefaultSlotMinutes is the fixed booking granularity.
const DefaultSlotMinutes = 60

// Slot is a derived bookable interval on a single date. Slots are generated
// fresh per query and never persisted.
type Slot struct {
	Date  string `json:"date"`
	Start string `json:"startTime"`
	End   string `json:"endTime"`
}

// GenerateSlots derives the ordered bookable slots a schedule entry yields for
// a calendar date. Pure function of its inputs: the same entry and date always
// produce the same sequence.
//
// Yields nothing when the entry is missing, its normalized status blocks the
// day, the window is absent, or the window is shorter than one step. The walk
// only emits a slot when a full step still fits, so no partial final slot is
// ever produced.
func GenerateSlots(entry *models.WeeklySchedule, date time.Time, loc *time.Location, stepMinutes int) []Slot {
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotMinutes
	}
	if entry == nil || NormalizeStatus(entry.Status).Blocks() {
		return nil
	}
	start, end, ok := entry.Window()
	if !ok {
		return nil
	}
	startMins, err := ParseClock(start)
	if err != nil {
		return nil
	}
	endMins, err := ParseClock(end)
	if err != nil {
		return nil
	}

	day := date.In(loc).Format("2006-01-02")
	var slots []Slot
	for mins := startMins; mins+stepMinutes <= endMins; mins += stepMinutes {
		slots = append(slots, Slot{
			Date:  day,
			Start: FormatClock(mins),
			End:   FormatClock(mins + stepMinutes),
		})
	}
	return slots
}

// SlotsForDate resolves the weekday entry for date and generates its slots.
func SlotsForDate(week Week, date time.Time, loc *time.Location, stepMinutes int) []Slot {
	return GenerateSlots(week.ForDate(date, loc), date, loc, stepMinutes)
}

// ParseClock converts "HH:MM" (or "HH:MM:SS", seconds ignored) to minutes
// since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed clock %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
