package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2026-10-18")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if want := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("2026-10-18T09:30:00+05:30"); err != nil {
		t.Fatalf("ParseDate rfc3339: %v", err)
	}
	if _, err := ParseDate("18/10/2026"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, time.October, 18, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC)
	next := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Fatal("expected same day for morning and night")
	}
	if SameDay(night, next) {
		t.Fatal("expected different days across midnight")
	}
}

func TestInMonthOf(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "same month", t: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "previous month", t: time.Date(2026, time.September, 30, 23, 0, 0, 0, time.UTC), want: false},
		{name: "same month last year", t: time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InMonthOf(tt.t, now); got != tt.want {
				t.Fatalf("InMonthOf = %v, want %v", got, tt.want)
			}
		})
	}
}
