package hours

import (
	"testing"
	"time"
)

func TestIntervalLabel(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "00:00-01:00"},
		{9, "09:00-10:00"},
		{10, "10:00-11:00"},
		{23, "23:00-24:00"},
	}

	for _, tt := range tests {
		if s := IntervalLabel(tt.hour); s != tt.expected {
			t.Errorf("IntervalLabel(%d) expected %q, got %q", tt.hour, tt.expected, s)
		}
	}
}

func TestPathDate(t *testing.T) {
	// 23:30 UTC is already the next day in Oslo
	utc := time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC)
	expected := "2024/03-05"
	if s := PathDate(utc); s != expected {
		t.Errorf("PathDate() expected %q, got %q", expected, s)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 3, 31, 15, 4, 5, 0, Location())

	m := Midnight(in)
	if m.Hour() != 0 || m.Minute() != 0 || m.Day() != 31 {
		t.Errorf("Midnight() expected 2024-03-31 00:00, got %v", m)
	}

	next := NextMidnight(in)
	if next.Day() != 1 || next.Month() != time.April || next.Hour() != 0 {
		t.Errorf("NextMidnight() expected 2024-04-01 00:00, got %v", next)
	}
}

func TestSetTimezone(t *testing.T) {
	defer func() {
		if err := SetTimezone("Europe/Oslo"); err != nil {
			t.Fatal(err)
		}
	}()

	if err := SetTimezone("Not/AZone"); err == nil {
		t.Error("SetTimezone() expected error for unknown zone")
	}

	if err := SetTimezone("UTC"); err != nil {
		t.Fatalf("SetTimezone() unexpected error: %v", err)
	}
	if Location() != time.UTC {
		t.Errorf("Location() expected UTC, got %v", Location())
	}
}
