package shared_test

import (
	"testing"
	"time"

	"sahayak/shared"
)

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 1, 10, 21, 59, 30, 123, loc)

	got := shared.DayOf(in)
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, loc)

	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != loc {
		t.Error("expected location to be preserved")
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name     string
		a        time.Time
		b        time.Time
		expected bool
	}{
		{
			name:     "same calendar day, different times",
			a:        time.Date(2024, 1, 10, 0, 1, 0, 0, time.UTC),
			b:        time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "adjacent days",
			a:        time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC),
			b:        time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "same day number, different month",
			a:        time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "reconstructed value compares equal",
			a:        time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			b:        shared.DayOf(time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.SameDay(tt.a, tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected int
	}{
		{name: "midnight", in: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), expected: 0},
		{name: "one minute before cutoff", in: time.Date(2024, 1, 10, 21, 59, 0, 0, time.UTC), expected: 1319},
		{name: "cutoff", in: time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC), expected: 1320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.MinutesSinceMidnight(tt.in); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAt(t *testing.T) {
	day := time.Date(2024, 1, 10, 18, 45, 12, 99, time.UTC)

	got := shared.At(day, 9, 35)
	want := time.Date(2024, 1, 10, 9, 35, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRoundToPaise(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "already exact", in: 1600, expected: 1600},
		{name: "rounds up", in: 2391.996, expected: 2392},
		{name: "rounds down", in: 1000.004, expected: 1000},
		{name: "keeps paise", in: 1234.56, expected: 1234.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.RoundToPaise(tt.in); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
