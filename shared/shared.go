package shared

import (
	"math"
	"time"
)

// DayOf truncates a time to midnight of its calendar day, keeping the
// location. Calendar-day comparisons are done on values, never on pointer
// identity.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MinutesSinceMidnight returns the minute-of-day of the given instant.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// At returns the instant on day's calendar day at the given wall-clock
// hour and minute.
func At(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// RoundToPaise rounds a rupee amount to two decimal places for display and
// cart storage.
func RoundToPaise(amount float64) float64 {
	return math.Round(amount*100) / 100
}
