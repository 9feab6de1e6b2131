package tests

import (
	"errors"
	"math"
	"testing"

	"github.com/mrsinham/datefuzz/internal/variance"
)

// TestValidation_DateFormats tests strict YYYY-MM-DD input validation
func TestValidation_DateFormats(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantError bool
	}{
		{
			name:      "valid_date",
			date:      "2023-10-26",
			wantError: false,
		},
		{
			name:      "valid_leap_day",
			date:      "2024-02-29",
			wantError: false,
		},
		{
			name:      "slash_separators",
			date:      "2023/10/26",
			wantError: true,
		},
		{
			name:      "month_out_of_range",
			date:      "2023-13-01",
			wantError: true,
		},
		{
			name:      "impossible_day",
			date:      "2023-02-30",
			wantError: true,
		},
		{
			name:      "leap_day_common_year",
			date:      "2023-02-29",
			wantError: true,
		},
		{
			name:      "not_zero_padded",
			date:      "2023-1-2",
			wantError: true,
		},
		{
			name:      "empty",
			date:      "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := variance.ParseDate(tt.date)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error for %q but got nil", tt.date)
					return
				}
				var formatErr *variance.InvalidFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("Expected *InvalidFormatError, got %T: %v", err, err)
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error for %q but got: %v", tt.date, err)
				}
			}
		})
	}
}

// TestValidation_RangeCeiling tests the range-versus-ceiling contract
func TestValidation_RangeCeiling(t *testing.T) {
	tests := []struct {
		name      string
		rangeDays int
		maxRange  int
		wantError bool
	}{
		{
			name:      "zero_range",
			rangeDays: 0,
			maxRange:  365,
			wantError: false,
		},
		{
			name:      "default_range_default_ceiling",
			rangeDays: 30,
			maxRange:  365,
			wantError: false,
		},
		{
			name:      "at_ceiling",
			rangeDays: 365,
			maxRange:  365,
			wantError: false,
		},
		{
			name:      "negative_at_ceiling",
			rangeDays: -365,
			maxRange:  365,
			wantError: false,
		},
		{
			name:      "over_ceiling",
			rangeDays: 50,
			maxRange:  30,
			wantError: true,
		},
		{
			name:      "negative_over_ceiling",
			rangeDays: -50,
			maxRange:  30,
			wantError: true,
		},
		{
			name:      "zero_ceiling_rejects_nonzero_range",
			rangeDays: 50,
			maxRange:  0,
			wantError: true,
		},
		{
			name:      "zero_ceiling_allows_zero_range",
			rangeDays: 0,
			maxRange:  0,
			wantError: false,
		},
		{
			name:      "min_int_range_rejected",
			rangeDays: math.MinInt,
			maxRange:  365,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := variance.ValidateRange(tt.rangeDays, tt.maxRange)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got nil")
					return
				}
				var rangeErr *variance.RangeExceededError
				if !errors.As(err, &rangeErr) {
					t.Errorf("Expected *RangeExceededError, got %T: %v", err, err)
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
			}
		})
	}
}
