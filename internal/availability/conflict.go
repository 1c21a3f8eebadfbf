package availability

import (
	"time"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// IsOccupied reports whether the slot at date + clock is already taken by an
// appointment whose status is in the occupying set.
//
// Both sides are normalized to the same fixed civil timezone before
// comparison: slot labels are zone-less wall-clock strings, so comparing in
// the caller's local zone would shift bookings across date boundaries. Two
// values collide only when calendar date and zero-padded HH:MM both match
// exactly. excludeID skips one appointment so a reschedule never collides
// with its own current slot.
func IsOccupied(loc *time.Location, date time.Time, clock string, appts []models.Appointment, occupying []models.AppointmentStatus, excludeID string) bool {
	return FindOccupying(loc, date, clock, appts, occupying, excludeID) != nil
}

// FindOccupying returns the appointment occupying the slot, or nil.
func FindOccupying(loc *time.Location, date time.Time, clock string, appts []models.Appointment, occupying []models.AppointmentStatus, excludeID string) *models.Appointment {
	if mins, err := ParseClock(clock); err == nil {
		clock = FormatClock(mins)
	}
	day := date.In(loc).Format("2006-01-02")

	for i := range appts {
		apt := &appts[i]
		if excludeID != "" && apt.ID == excludeID {
			continue
		}
		if !statusIn(apt.Status, occupying) {
			continue
		}
		at := apt.PreferredDateTime.In(loc)
		if at.Format("2006-01-02") == day && at.Format("15:04") == clock {
			return apt
		}
	}
	return nil
}

func statusIn(status models.AppointmentStatus, set []models.AppointmentStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
