package variance

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestInjector_ZeroRangeIsIdentity(t *testing.T) {
	date := mustDate(t, "2023-10-26")
	injector := NewSeededInjector(42)

	for i := 0; i < 100; i++ {
		got := injector.Inject(date, 0)
		if !got.Equal(date) {
			t.Fatalf("Inject with range 0 changed the date: got %v, want %v", got, date)
		}
	}
}

func TestInjector_ResultWithinBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		rangeDays int
	}{
		{name: "small_range", date: "2023-10-26", rangeDays: 10},
		{name: "negative_range", date: "2023-10-26", rangeDays: -10},
		{name: "year_boundary", date: "2023-12-31", rangeDays: 5},
		{name: "leap_day_boundary", date: "2024-02-28", rangeDays: 3},
		{name: "large_range", date: "2023-06-15", rangeDays: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := mustDate(t, tt.date)
			injector := NewSeededInjector(1234)

			n := tt.rangeDays
			if n < 0 {
				n = -n
			}
			earliest := date.AddDate(0, 0, -n)
			latest := date.AddDate(0, 0, n)

			for i := 0; i < 1000; i++ {
				got := injector.Inject(date, tt.rangeDays)
				if got.Before(earliest) || got.After(latest) {
					t.Fatalf("Inject(%s, %d) = %v, outside [%v, %v]",
						tt.date, tt.rangeDays, got, earliest, latest)
				}
			}
		})
	}
}

func TestInjector_BothEndpointsReachable(t *testing.T) {
	date := mustDate(t, "2023-10-26")
	injector := NewSeededInjector(7)

	// With range 1 there are only three possible outputs; in 1000 draws all
	// of them show up unless the sampling is broken.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := injector.Inject(date, 1)
		seen[got.Format(DateLayout)] = true
	}

	for _, want := range []string{"2023-10-25", "2023-10-26", "2023-10-27"} {
		if !seen[want] {
			t.Errorf("date %s never drawn in 1000 samples", want)
		}
	}
	if len(seen) != 3 {
		t.Errorf("drew %d distinct dates, want 3: %v", len(seen), seen)
	}
}

func TestInjector_SameSeedSameOffsets(t *testing.T) {
	date := mustDate(t, "2023-10-26")

	a := NewSeededInjector(99)
	b := NewSeededInjector(99)

	for i := 0; i < 50; i++ {
		got1 := a.Inject(date, 30)
		got2 := b.Inject(date, 30)
		if !got1.Equal(got2) {
			t.Fatalf("draw %d diverged: %v != %v", i, got1, got2)
		}
	}
}

func TestInjector_CalendarRollover(t *testing.T) {
	// AddDate arithmetic must roll across month, year and leap boundaries.
	tests := []struct {
		name   string
		date   string
		offset int
		want   string
	}{
		{name: "into_next_month", date: "2023-10-26", offset: 10, want: "2023-11-05"},
		{name: "into_previous_month", date: "2023-10-26", offset: -26, want: "2023-09-30"},
		{name: "across_year_end", date: "2023-12-30", offset: 3, want: "2024-01-02"},
		{name: "across_leap_day", date: "2024-02-28", offset: 1, want: "2024-02-29"},
		{name: "past_leap_day", date: "2024-02-28", offset: 2, want: "2024-03-01"},
		{name: "skip_missing_leap_day", date: "2023-02-28", offset: 1, want: "2023-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := mustDate(t, tt.date)
			got := date.AddDate(0, 0, tt.offset).Format(DateLayout)
			if got != tt.want {
				t.Errorf("%s + %d days = %s, want %s", tt.date, tt.offset, got, tt.want)
			}
		})
	}
}

func TestNewInjector_NilRNGFallsBack(t *testing.T) {
	injector := NewInjector(nil)
	date := mustDate(t, "2023-10-26")

	// Must not panic and must stay within bounds
	got := injector.Inject(date, 5)
	if got.Before(date.AddDate(0, 0, -5)) || got.After(date.AddDate(0, 0, 5)) {
		t.Errorf("Inject with default RNG out of bounds: %v", got)
	}
}
