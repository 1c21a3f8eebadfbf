package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// WireDateTimeLayout is the exact shape the legacy clients send and expect for
// preferredDateTime: space-separated, seconds always present, clinic-local
// wall clock, no offset.
const WireDateTimeLayout = "2006-01-02 15:04:05"

var clinicTimeLayouts = []string{
	WireDateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ClinicTime is a wall-clock timestamp in the clinic's civil timezone. It
// marshals to the legacy wire format and tolerates the datetime-local input
// variants the booking clients produce.
type ClinicTime struct {
	time.Time
}

// Location is set once at startup from config. Until then parsing falls back
// to UTC, which only matters for tests that never configure a zone.
var clinicLocation = time.UTC

// SetClinicLocation fixes the civil timezone used for parsing and rendering.
func SetClinicLocation(loc *time.Location) {
	if loc != nil {
		clinicLocation = loc
	}
}

// ClinicLocation returns the configured civil timezone.
func ClinicLocation() *time.Location {
	return clinicLocation
}

// NewClinicTime builds a ClinicTime in the clinic zone.
func NewClinicTime(t time.Time) ClinicTime {
	return ClinicTime{Time: t.In(clinicLocation)}
}

// ParseClinicTime parses any accepted wire variant in the clinic zone.
func ParseClinicTime(raw string) (ClinicTime, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ClinicTime{}, fmt.Errorf("empty datetime")
	}
	for _, layout := range clinicTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, clinicLocation); err == nil {
			return ClinicTime{Time: t}, nil
		}
	}
	return ClinicTime{}, fmt.Errorf("unrecognized datetime %q", raw)
}

// String renders the wire format.
func (t ClinicTime) String() string {
	if t.IsZero() {
		return ""
	}
	return t.In(clinicLocation).Format(WireDateTimeLayout)
}

// MarshalJSON emits the wire format as a JSON string.
func (t ClinicTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the wire format plus datetime-local variants.
func (t *ClinicTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*t = ClinicTime{}
		return nil
	}
	parsed, err := ParseClinicTime(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for sqlx writes.
func (t ClinicTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.In(clinicLocation), nil
}

// Scan implements sql.Scanner for sqlx reads.
func (t *ClinicTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ClinicTime{}
		return nil
	case time.Time:
		*t = NewClinicTime(v)
		return nil
	case []byte:
		parsed, err := ParseClinicTime(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseClinicTime(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClinicTime", src)
	}
}
