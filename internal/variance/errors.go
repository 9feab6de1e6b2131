package variance

import "fmt"

// InvalidFormatError reports an input string that could not be parsed as a
// valid calendar date.
type InvalidFormatError struct {
	Input string
	Err   error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid date format %q: use YYYY-MM-DD (e.g., 2023-10-26)", e.Input)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// RangeExceededError reports a requested variance range whose absolute value
// is larger than the configured maximum.
type RangeExceededError struct {
	Range    int
	MaxRange int
}

func (e *RangeExceededError) Error() string {
	return fmt.Sprintf("the specified range (%d) exceeds the maximum allowed range (%d)", e.Range, e.MaxRange)
}
