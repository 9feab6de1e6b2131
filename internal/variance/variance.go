package variance

import (
	"time"

	"github.com/mrsinham/datefuzz/internal/strftime"
)

// Options holds all parameters for a single obfuscation run.
type Options struct {
	Date      string // input date, YYYY-MM-DD (required)
	RangeDays int    // symmetric variance bound in days
	MaxRange  int    // ceiling on |RangeDays|, taken as given
	Format    string // strftime output pattern (empty = strftime.DefaultPattern)
	Seed      int64  // RNG seed for reproducibility (0 = auto-generated)
}

// Obfuscate runs the full pipeline: parse the date, validate the range
// against the ceiling, draw a uniform random offset, shift the date and
// format the result. The random draw is the only non-determinism; a
// non-zero Seed makes the output reproducible.
//
// MaxRange is not defaulted here: callers that want the 365-day default
// apply it at their own edge (flag defaults, wizard state). A ceiling of 0
// rejects every non-zero range.
func Obfuscate(opts Options) (string, error) {
	date, err := ParseDate(opts.Date)
	if err != nil {
		return "", err
	}

	if err := ValidateRange(opts.RangeDays, opts.MaxRange); err != nil {
		return "", err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	shifted := NewSeededInjector(seed).Inject(date, opts.RangeDays)

	pattern := opts.Format
	if pattern == "" {
		pattern = strftime.DefaultPattern
	}
	return strftime.Format(shifted, pattern), nil
}
