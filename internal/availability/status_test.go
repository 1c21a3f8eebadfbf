package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatusAliases(t *testing.T) {
	cases := map[string]Status{
		"AVAILABLE":    StatusAvailable,
		"available":    StatusAvailable,
		" Available ":  StatusAvailable,
		"HALF_DAY":     StatusHalfDay,
		"half day":     StatusHalfDay,
		"Half  Day":    StatusHalfDay,
		"UNAVAILABLE":  StatusUnavailable,
		"unavailable ": StatusUnavailable,
		"DAY_OFF":      StatusDayOff,
		"day off":      StatusDayOff,
		"DAYOFF":       StatusDayOff,
		"OFF":          StatusDayOff,
		"off":          StatusDayOff,
		"":             StatusUnknown,
		"ON LEAVE":     StatusUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeStatus(raw), "raw %q", raw)
	}
}

func TestStatusBranching(t *testing.T) {
	assert.True(t, StatusDayOff.Blocks())
	assert.True(t, StatusUnavailable.Blocks())
	assert.False(t, StatusAvailable.Blocks())
	assert.False(t, StatusUnknown.Blocks())

	assert.True(t, StatusAvailable.HasWindow())
	assert.True(t, StatusHalfDay.HasWindow())
	assert.False(t, StatusDayOff.HasWindow())
	assert.False(t, StatusUnknown.HasWindow())
}
