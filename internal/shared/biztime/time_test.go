package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndOfDayUTC(t *testing.T) {
	in := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := EndOfDayUTC(in)

	assert.Equal(t, time.Date(2025, 3, 14, 23, 59, 59, 999999999, time.UTC), got)

	// A checklist dated 23:59:59 on the end date is inside the filter,
	// one dated midnight the next day is not.
	lastSecond := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
	nextMidnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, lastSecond.After(got))
	assert.True(t, nextMidnight.After(got))
}

func TestEndOfDayUTC_ConvertsToUTCFirst(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:30 +05:00 is 21:30 UTC of the previous calendar day.
	in := time.Date(2025, 3, 15, 2, 30, 0, 0, loc)
	got := EndOfDayUTC(in)
	assert.Equal(t, 14, got.Day())
}

func TestStartOfDayUTC(t *testing.T) {
	in := time.Date(2025, 3, 14, 9, 26, 53, 123, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), StartOfDayUTC(in))
}

func TestSameDayUTC(t *testing.T) {
	a := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDayUTC(a, b))
	assert.False(t, SameDayUTC(b, c))
}

func TestDateKeyUTC(t *testing.T) {
	in := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-14", DateKeyUTC(in))
}
