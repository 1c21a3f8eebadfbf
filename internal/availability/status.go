package availability

import "strings"

// Status is the closed set of schedule states the engine branches on. Raw
// schedule rows carry free-form labels; normalize before any comparison.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusHalfDay     Status = "HALF_DAY"
	StatusUnavailable Status = "UNAVAILABLE"
	StatusDayOff      Status = "DAY_OFF"
	StatusUnknown     Status = "UNKNOWN"
)

// NormalizeStatus maps a raw status label onto the closed Status set.
// Uppercases, trims, and collapses internal whitespace to underscores, then
// folds the observed aliases (OFF, DAYOFF, mixed case, embedded spaces).
// Unrecognized labels become StatusUnknown, which the evaluator treats
// permissively.
func NormalizeStatus(raw string) Status {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(raw)))
	switch strings.Join(fields, "_") {
	case "AVAILABLE":
		return StatusAvailable
	case "HALF_DAY", "HALFDAY":
		return StatusHalfDay
	case "UNAVAILABLE":
		return StatusUnavailable
	case "DAY_OFF", "DAYOFF", "OFF":
		return StatusDayOff
	default:
		return StatusUnknown
	}
}

// Blocks reports whether the status rules out booking for the whole day.
func (s Status) Blocks() bool {
	return s == StatusUnavailable || s == StatusDayOff
}

// HasWindow reports whether the status implies an active start/end window.
func (s Status) HasWindow() bool {
	return s == StatusAvailable || s == StatusHalfDay
}
