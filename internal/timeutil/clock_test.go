package timeutil

import (
	"testing"
	"time"
)

func TestLocalClockFixedOffset(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		input    string
		expected string
	}{
		{"2023-01-15T00:00:00Z", "7pm"},
		{"2023-01-15T13:05:00Z", "8:05am"},
		{"2023-01-15T17:00:00Z", "0pm"},
		{"2023-01-15T05:00:00Z", "0am"},
		{"2023-01-15T23:30:00Z", "6:30pm"},
		{"2023-01-15T14:09:00Z", "9:09am"},
	}

	for _, tc := range cases {
		got, err := LocalClock(tc.input, now, est)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.input, err)
		}
		if got != tc.expected {
			t.Fatalf("%s: expected %s, got %s", tc.input, tc.expected, got)
		}
	}
}

func TestLocalClockUsesOffsetObservedNow(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	summer := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)
	winter := time.Date(2023, 1, 10, 12, 0, 0, 0, time.UTC)

	// January game, formatted while New York observes daylight time.
	got, err := LocalClock("2023-01-15T00:00:00Z", summer, ny)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "8pm" {
		t.Fatalf("expected summer offset to apply, got %s", got)
	}

	got, err = LocalClock("2023-01-15T00:00:00Z", winter, ny)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "7pm" {
		t.Fatalf("expected standard offset to apply, got %s", got)
	}
}

func TestLocalClockRejectsBadInput(t *testing.T) {
	if _, err := LocalClock("yesterday", time.Now(), time.UTC); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLocalClockNilLocationUsesLocal(t *testing.T) {
	if _, err := LocalClock("2023-01-15T00:00:00Z", time.Now(), nil); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
