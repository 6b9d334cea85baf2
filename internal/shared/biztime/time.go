// Package biztime provides UTC day-boundary calculations for the
// statistics queries. All storage, transport, and date bucketing use
// UTC; implicit local timezones are prohibited.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00:00 of t's UTC calendar day.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns the last instant (23:59:59.999999999) of t's UTC
// calendar day. Statistics filters use this so an end date covers the
// whole day, matching what report callers expect.
func EndOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
}

// SameDayUTC reports whether a and b fall on the same UTC calendar day.
func SameDayUTC(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.YearDay() == bu.YearDay()
}

// DateKeyUTC formats t's UTC calendar date as a stable bucket key.
func DateKeyUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
