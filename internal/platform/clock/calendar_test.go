package clock_test

import (
	"testing"
	"time"

	"questlog/internal/platform/clock"
)

func TestCalendarDayKeyUsesConfiguredZone(t *testing.T) {
	t.Parallel()
	cal, err := clock.NewCalendar("Asia/Tokyo")
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	// 23:30 UTC is already the next day in Tokyo.
	instant := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	if got := cal.DayKey(instant); got != "2026-03-02" {
		t.Fatalf("expected 2026-03-02, got %s", got)
	}
	if got := clock.UTCCalendar().DayKey(instant); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01 in utc, got %s", got)
	}
}

func TestNewCalendarRejectsUnknownZone(t *testing.T) {
	t.Parallel()
	if _, err := clock.NewCalendar("Mars/Olympus"); err == nil {
		t.Fatalf("unknown zone should fail")
	}
}

func TestValidDayKey(t *testing.T) {
	t.Parallel()
	if !clock.ValidDayKey("2026-02-25") {
		t.Fatalf("expected valid key")
	}
	if clock.ValidDayKey("25/02/2026") {
		t.Fatalf("expected invalid key")
	}
}
