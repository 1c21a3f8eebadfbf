package availability

import (
	"time"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// Week is an immutable snapshot of the weekly schedule, at most one entry per
// canonical weekday. Lookups return pointers into the snapshot; callers must
// not mutate them.
type Week []models.WeeklySchedule

// ForWeekday returns the entry for a canonical weekday, or nil when the
// snapshot has none.
func (w Week) ForWeekday(weekday int) *models.WeeklySchedule {
	for i := range w {
		if w[i].Weekday == weekday {
			return &w[i]
		}
	}
	return nil
}

// ForDate resolves the entry governing a calendar date in the given zone.
func (w Week) ForDate(date time.Time, loc *time.Location) *models.WeeklySchedule {
	return w.ForWeekday(CanonicalWeekday(date, loc))
}
