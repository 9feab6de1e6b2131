package wizard

import (
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/types"
	"github.com/mrsinham/datefuzz/internal/variance"
)

// ToOptions converts WizardState to variance.Options for obfuscation.
func ToOptions(s *WizardState) variance.Options {
	opts := variance.Options{
		Date:      s.Params.Date,
		RangeDays: s.Params.RangeDays,
		MaxRange:  s.Params.MaxRange,
		Format:    s.Params.Format,
		Seed:      s.Params.Seed,
	}

	if opts.MaxRange == 0 {
		opts.MaxRange = variance.DefaultMaxRange
	}
	return opts
}

// FromOptions creates a WizardState from variance.Options.
// Used for --save-config to export CLI options as YAML.
func FromOptions(opts variance.Options) *WizardState {
	maxRange := opts.MaxRange
	if maxRange == 0 {
		maxRange = variance.DefaultMaxRange
	}

	return &WizardState{
		Params: types.ParamsConfig{
			Date:      opts.Date,
			RangeDays: opts.RangeDays,
			MaxRange:  maxRange,
			Format:    opts.Format,
			Seed:      opts.Seed,
		},
	}
}
