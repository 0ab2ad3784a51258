package util_test

import (
	"testing"
	"time"

	util "habits-api/internal/utils"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2023, 1, 4, 15, 42, 7, 123, time.UTC)
	got := util.StartOfDay(in)

	want := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}

	t.Run("NonUTCInput", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		in := time.Date(2023, 1, 4, 22, 30, 0, 0, loc)
		// 22:30 BRT is already Jan 5 in UTC.
		want := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
		if got := util.StartOfDay(in); !got.Equal(want) {
			t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
		}
	})
}

func TestWeekDay(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 0}, // Sunday
		{time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), 3}, // Wednesday
		{time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC), 6}, // Saturday
	}
	for _, c := range cases {
		if got := util.WeekDay(c.date); got != c.want {
			t.Errorf("WeekDay(%v) = %d, want %d", c.date, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Run("PlainDate", func(t *testing.T) {
		got, err := util.ParseDate("2023-01-04")
		if err != nil {
			t.Fatalf("ParseDate failed: %v", err)
		}
		want := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDate = %v, want %v", got, want)
		}
	})

	t.Run("RFC3339", func(t *testing.T) {
		got, err := util.ParseDate("2023-01-04T00:00:00Z")
		if err != nil {
			t.Fatalf("ParseDate failed: %v", err)
		}
		want := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDate = %v, want %v", got, want)
		}
	})

	t.Run("NonMidnightKeptAsIs", func(t *testing.T) {
		got, err := util.ParseDate("2023-01-04T10:30:00Z")
		if err != nil {
			t.Fatalf("ParseDate failed: %v", err)
		}
		if got.Hour() != 10 || got.Minute() != 30 {
			t.Errorf("ParseDate normalized the time-of-day: %v", got)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := util.ParseDate("not-a-date"); err == nil {
			t.Error("ParseDate should have failed for garbage input")
		}
	})
}
