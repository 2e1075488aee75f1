package timezone_test

import (
	"testing"
	"time"

	"sahayak/shared/timezone"
)

func TestNowTicksInAppLocation(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Fatal("Now() returned zero time")
	}

	if now.Location().String() != timezone.GetLocation().String() {
		t.Errorf("Now() location %q, want app location %q", now.Location(), timezone.GetLocation())
	}
}

func TestParseReadsBookingStampsInAppLocation(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02 15:04", "2026-01-10 09:35")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Hour() != 9 || parsed.Minute() != 35 {
		t.Errorf("Parse() wall clock %02d:%02d, want 09:35", parsed.Hour(), parsed.Minute())
	}

	// The wall-clock values a user picked must survive a format round trip.
	if got := parsed.Format("2006-01-02 15:04"); got != "2026-01-10 09:35" {
		t.Errorf("round trip produced %q", got)
	}
}

func TestToAppTimeKeepsTheInstant(t *testing.T) {
	utcTime := time.Date(2026, 1, 10, 4, 5, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("ToAppTime() changed the instant")
	}
	if appTime.Location().String() != timezone.GetLocation().String() {
		t.Errorf("ToAppTime() location %q, want app location", appTime.Location())
	}
}

func TestFormatUsesAppLocation(t *testing.T) {
	instant := time.Date(2026, 1, 10, 4, 5, 0, 0, time.UTC)

	formatted := timezone.Format(instant, "15:04")
	want := instant.In(timezone.GetLocation()).Format("15:04")

	if formatted != want {
		t.Errorf("Format() = %q, want %q", formatted, want)
	}
}
