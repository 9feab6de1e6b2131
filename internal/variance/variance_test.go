package variance

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestObfuscate_ZeroRangeKeepsDate(t *testing.T) {
	got, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: 0})
	if err != nil {
		t.Fatalf("Obfuscate returned error: %v", err)
	}
	if got != "2023-10-26" {
		t.Errorf("Obfuscate with range 0 = %q, want %q", got, "2023-10-26")
	}
}

func TestObfuscate_ResultWithinBounds(t *testing.T) {
	earliest := mustDate(t, "2023-10-16")
	latest := mustDate(t, "2023-11-05")

	for seed := int64(1); seed <= 200; seed++ {
		got, err := Obfuscate(Options{
			Date:      "2023-10-26",
			RangeDays: 10,
			MaxRange:  365,
			Seed:      seed,
		})
		if err != nil {
			t.Fatalf("seed %d: Obfuscate returned error: %v", seed, err)
		}

		date, err := time.Parse(DateLayout, got)
		if err != nil {
			t.Fatalf("seed %d: output %q is not a date: %v", seed, got, err)
		}
		if date.Before(earliest) || date.After(latest) {
			t.Errorf("seed %d: output %s outside [2023-10-16, 2023-11-05]", seed, got)
		}
	}
}

func TestObfuscate_SeedReproducibility(t *testing.T) {
	opts := Options{Date: "2023-10-26", RangeDays: 30, MaxRange: 365, Seed: 42}

	first, err := Obfuscate(opts)
	if err != nil {
		t.Fatalf("Obfuscate returned error: %v", err)
	}

	for i := 0; i < 10; i++ {
		got, err := Obfuscate(opts)
		if err != nil {
			t.Fatalf("Obfuscate returned error: %v", err)
		}
		if got != first {
			t.Fatalf("same seed produced different outputs: %q != %q", got, first)
		}
	}
}

func TestObfuscate_RangeExceeded(t *testing.T) {
	_, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: 50, MaxRange: 30})
	if err == nil {
		t.Fatal("expected RangeExceededError, got nil")
	}

	var rangeErr *RangeExceededError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error is %T, want *RangeExceededError", err)
	}
	if rangeErr.Range != 50 || rangeErr.MaxRange != 30 {
		t.Errorf("RangeExceededError = {%d, %d}, want {50, 30}", rangeErr.Range, rangeErr.MaxRange)
	}
}

func TestObfuscate_InvalidFormat(t *testing.T) {
	_, err := Obfuscate(Options{Date: "2023/10/26", RangeDays: 10})
	if err == nil {
		t.Fatal("expected InvalidFormatError, got nil")
	}

	var formatErr *InvalidFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error is %T, want *InvalidFormatError", err)
	}
}

func TestObfuscate_ZeroCeilingRejectsNonZeroRange(t *testing.T) {
	// The ceiling is taken as given; 0 is not a "use the default" sentinel
	_, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: 50, MaxRange: 0})
	if err == nil {
		t.Fatal("range 50 with ceiling 0 should fail")
	}

	var rangeErr *RangeExceededError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error is %T, want *RangeExceededError", err)
	}
	if rangeErr.Range != 50 || rangeErr.MaxRange != 0 {
		t.Errorf("RangeExceededError = {%d, %d}, want {50, 0}", rangeErr.Range, rangeErr.MaxRange)
	}

	// Zero range under a zero ceiling is still the identity
	got, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: 0, MaxRange: 0})
	if err != nil {
		t.Fatalf("range 0 with ceiling 0 should pass, got: %v", err)
	}
	if got != "2023-10-26" {
		t.Errorf("output = %q, want %q", got, "2023-10-26")
	}
}

func TestObfuscate_MinIntRangeRejected(t *testing.T) {
	// abs(math.MinInt) is not representable; the range must still be refused
	_, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: math.MinInt, MaxRange: 365})
	if err == nil {
		t.Fatal("range math.MinInt should fail")
	}

	var rangeErr *RangeExceededError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error is %T, want *RangeExceededError", err)
	}
}

func TestObfuscate_CustomFormat(t *testing.T) {
	got, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: 0, Format: "%d/%m/%Y"})
	if err != nil {
		t.Fatalf("Obfuscate returned error: %v", err)
	}
	if got != "26/10/2023" {
		t.Errorf("Obfuscate with %%d/%%m/%%Y = %q, want %q", got, "26/10/2023")
	}
}

func TestObfuscate_RoundTrip(t *testing.T) {
	// Formatting with the default pattern and re-parsing yields the same date
	got, err := Obfuscate(Options{Date: "2023-10-26", RangeDays: 30, MaxRange: 365, Seed: 7})
	if err != nil {
		t.Fatalf("Obfuscate returned error: %v", err)
	}

	reparsed, err := ParseDate(got)
	if err != nil {
		t.Fatalf("output %q does not re-parse: %v", got, err)
	}
	if reparsed.Format(DateLayout) != got {
		t.Errorf("round trip changed the value: %q -> %q", got, reparsed.Format(DateLayout))
	}
}
