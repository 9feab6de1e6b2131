package variance

import "math"

const (
	// DefaultRange is the default variance range in days.
	DefaultRange = 30
	// DefaultMaxRange is the default ceiling on the variance range, a safety
	// clamp against runaway obfuscation.
	DefaultMaxRange = 365
)

// ValidateRange checks the requested range against the configured ceiling.
// A range is valid iff |rangeDays| <= maxRange; negative requests are
// allowed and mean the same symmetric interval as their absolute value.
// The comparison avoids negating rangeDays so math.MinInt cannot wrap
// around and slip past the ceiling; it is rejected outright since its
// magnitude exceeds any representable ceiling.
func ValidateRange(rangeDays, maxRange int) error {
	if rangeDays == math.MinInt || rangeDays > maxRange || rangeDays < -maxRange {
		return &RangeExceededError{Range: rangeDays, MaxRange: maxRange}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
