package converters

import (
	"testing"
	"time"
)

func TestParseDateOnly(t *testing.T) {
	got, err := ParseDateOnly("2025-03-15")
	if err != nil {
		t.Fatalf("ParseDateOnly: %v", err)
	}

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDateOnly = %v, want local midnight %v", got, want)
	}
}

func TestParseDateOnlyEmpty(t *testing.T) {
	got, err := ParseDateOnly("")
	if err != nil {
		t.Fatalf("ParseDateOnly(\"\"): %v", err)
	}
	if !got.IsZero() {
		t.Errorf("ParseDateOnly(\"\") = %v, want zero time", got)
	}
}

func TestParseDateOnlyInvalid(t *testing.T) {
	if _, err := ParseDateOnly("15/03/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateOnlyZero(t *testing.T) {
	if got := DateOnly(time.Time{}); got != "" {
		t.Errorf("DateOnly(zero) = %q, want empty", got)
	}
}

func TestDateOnlyRoundTripTruncatesTimeOfDay(t *testing.T) {
	// A stored instant at 14:00 pre-fills the edit field as its date;
	// re-parsing lands on midnight. The time-of-day is lost, which is
	// the behavior to preserve.
	stored := time.Date(2025, 3, 15, 14, 0, 0, 0, time.Local)

	field := DateOnly(stored)
	if field != "2025-03-15" {
		t.Fatalf("DateOnly = %q", field)
	}

	parsed, err := ParseDateOnly(field)
	if err != nil {
		t.Fatalf("ParseDateOnly: %v", err)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("round trip kept time-of-day: %v", parsed)
	}
	if parsed.Year() != 2025 || parsed.Month() != 3 || parsed.Day() != 15 {
		t.Errorf("round trip changed the date: %v", parsed)
	}
}
