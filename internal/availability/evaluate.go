package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/KurtMante/clinic-ops-api/internal/models"
)

// Decision is the outcome of an availability check. Reason is always
// populated; the UIs surface it verbatim even when the answer is yes.
type Decision struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

// Evaluate decides whether the instant falls inside the entry's bookable
// window.
//
// A missing entry is fail-open: absence of a rule is not a rejection. Blocked
// statuses reject with the original label so staff wording like "Day off"
// survives normalization. Active statuses compare the instant's zero-padded
// HH:MM against [start, end] inclusive on both ends — a request exactly at
// the end of the window is accepted. Unrecognized statuses stay permissive.
func Evaluate(at time.Time, entry *models.WeeklySchedule, loc *time.Location) Decision {
	if entry == nil {
		return Decision{Available: true, Reason: "No schedule restriction."}
	}

	status := NormalizeStatus(entry.Status)
	start, end, hasWindow := entry.Window()
	notes := strings.TrimSpace(entry.Notes)

	switch {
	case status.Blocks():
		return Decision{
			Available: false,
			Reason:    withNotes(fmt.Sprintf("Doctor unavailable (%s).", entry.Status), notes),
		}
	case status.HasWindow():
		if hasWindow {
			current := at.In(loc).Format("15:04")
			if current < start || current > end {
				return Decision{
					Available: false,
					Reason:    withNotes(fmt.Sprintf("Outside available time (%s - %s).", start, end), notes),
				}
			}
		}
		window := ""
		if hasWindow {
			window = fmt.Sprintf(" (%s - %s)", start, end)
		}
		return Decision{Available: true, Reason: withNotes("Available"+window+".", notes)}
	default:
		if notes != "" {
			return Decision{Available: true, Reason: notes}
		}
		return Decision{Available: true, Reason: "Available."}
	}
}

// EvaluateDate resolves the weekday entry for the instant's date and
// evaluates it.
func EvaluateDate(at time.Time, week Week, loc *time.Location) Decision {
	return Evaluate(at, week.ForDate(at, loc), loc)
}

func withNotes(msg, notes string) string {
	if notes == "" {
		return msg
	}
	return msg + " " + notes
}
