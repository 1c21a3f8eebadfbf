package availability

import "time"

// Canonical converts calendar-library weekday numbering (Sunday=0) to the
// clinic schedule numbering (Monday=0 .. Sunday=6). Input is reduced modulo 7
// so out-of-range values never panic. Every weekday conversion in the codebase
// goes through this function.
func Canonical(native int) int {
	n := native % 7
	if n < 0 {
		n += 7
	}
	return (n + 6) % 7
}

// CanonicalWeekday resolves the clinic weekday index of a calendar date,
// evaluated in the supplied civil timezone.
func CanonicalWeekday(t time.Time, loc *time.Location) int {
	return Canonical(int(t.In(loc).Weekday()))
}
