package variance

import (
	"math/rand/v2"
	"time"
)

// Package-level default RNG for callers that don't care about reproducibility
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// Injector draws random day offsets and applies them to dates.
type Injector struct {
	rng *rand.Rand
}

// NewInjector creates an injector backed by the given RNG. A nil rng falls
// back to a process-wide time-seeded source.
func NewInjector(rng *rand.Rand) *Injector {
	if rng == nil {
		rng = defaultRNG
	}
	return &Injector{rng: rng}
}

// NewSeededInjector creates an injector with a deterministic PCG source,
// so the same seed always produces the same offsets.
func NewSeededInjector(seed int64) *Injector {
	return NewInjector(rand.New(rand.NewPCG(uint64(seed), uint64(seed))))
}

// Inject shifts date by an integer drawn uniformly from the closed interval
// [-|rangeDays|, |rangeDays|]. Both endpoints are reachable with the same
// probability as every other integer in the interval. The shift uses
// calendar arithmetic, so month, year and leap-day boundaries roll over
// correctly. rangeDays = 0 returns the input date unchanged.
func (in *Injector) Inject(date time.Time, rangeDays int) time.Time {
	n := abs(rangeDays)
	offset := in.rng.IntN(2*n+1) - n
	return date.AddDate(0, 0, offset)
}
