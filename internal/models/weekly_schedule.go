package models

import "time"

// Weekday names indexed by the canonical clinic convention (Monday=0).
var WeekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeeklySchedule is one weekday's recurring schedule row. Exactly one row
// exists per weekday (0=Monday .. 6=Sunday). Status is stored raw; branching
// always goes through availability.NormalizeStatus.
type WeeklySchedule struct {
	Weekday   int       `db:"weekday" json:"weekday"`
	Status    string    `db:"status" json:"status"`
	StartTime *string   `db:"start_time" json:"start_time,omitempty"`
	EndTime   *string   `db:"end_time" json:"end_time,omitempty"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Window returns the HH:MM start/end pair, trimming any seconds component.
// ok is false when either side is missing or blank.
func (s *WeeklySchedule) Window() (start, end string, ok bool) {
	start = TrimClock(s.StartTime)
	end = TrimClock(s.EndTime)
	return start, end, start != "" && end != ""
}

// TrimClock reduces "HH:MM:SS" to "HH:MM"; nil or blank yields "".
func TrimClock(t *string) string {
	if t == nil {
		return ""
	}
	clock := *t
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}

// DayName returns the display name for the entry's weekday.
func (s *WeeklySchedule) DayName() string {
	if s.Weekday < 0 || s.Weekday > 6 {
		return ""
	}
	return WeekdayNames[s.Weekday]
}
