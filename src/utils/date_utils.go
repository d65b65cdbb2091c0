package utils

import (
	"time"
)

// DateLayout is the calendar date format used in every request, response and column.
const DateLayout = "2006-01-02"

// Now is the clock used for "today" computations; tests replace it.
var Now = time.Now

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	y, m, d := Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsValidDate reports whether s is a real YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
