package utils

import "time"

func FormatTimeISO(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseTimeISO(timeStr string) (time.Time, error) {
	return time.Parse(time.RFC3339, timeStr)
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}

// IsPastDate reports whether the given date falls strictly before today
// (date-level comparison, ignoring time of day).
func IsPastDate(t time.Time, now time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(now))
}
