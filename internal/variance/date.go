// Package variance perturbs calendar dates by a bounded uniform random day
// offset, for privacy-preserving obfuscation of timestamps.
package variance

import "time"

// DateLayout is the only accepted input layout: 4-digit year, 2-digit month,
// 2-digit day, dash-separated.
const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date string. Impossible calendar
// dates (2023-02-30), wrong separators and missing zero padding all fail
// with *InvalidFormatError.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidFormatError{Input: s, Err: err}
	}
	return t, nil
}
