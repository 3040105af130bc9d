package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAndParseRoundTrip(t *testing.T) {
	day := "2025-11-13"

	parsed, err := ParseDay(day)
	require.NoError(t, err)

	assert.Equal(t, day, FormatDay(parsed))
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, time.Local, parsed.Location())
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"13/11/2025", "2025-13-40", "tomorrow", ""} {
		_, err := ParseDay(raw)
		assert.Error(t, err, "expected error for %q", raw)
	}
}

func TestFormatDayUsesLocalFields(t *testing.T) {
	// 23:30 local stays on the same calendar day regardless of what the
	// UTC instant would say
	late := time.Date(2025, time.November, 13, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2025-11-13", FormatDay(late))
}

func TestMidnight(t *testing.T) {
	noon := time.Date(2025, time.March, 3, 12, 45, 7, 123, time.Local)
	m := Midnight(noon)

	assert.Equal(t, 0, m.Hour())
	assert.Equal(t, 0, m.Minute())
	assert.True(t, SameDay(noon, m))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.May, 1, 0, 0, 1, 0, time.Local)
	b := time.Date(2025, time.May, 1, 23, 59, 59, 0, time.Local)
	c := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestAddDaysAcrossMonthBoundary(t *testing.T) {
	start := time.Date(2025, time.October, 30, 15, 0, 0, 0, time.Local)
	stepped := AddDays(start, 3)

	assert.Equal(t, "2025-11-02", FormatDay(stepped))
	assert.Equal(t, 0, stepped.Hour())
}

func TestAddDaysStaysOnMidnightAcrossDST(t *testing.T) {
	// Walk across late October, where many zones leave summer time.
	// Every step must land exactly on midnight.
	day := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.Local)
	for i := 0; i < 20; i++ {
		day = AddDays(day, 1)
		assert.Equal(t, 0, day.Hour(), "off midnight at %s", FormatDay(day))
	}
}
