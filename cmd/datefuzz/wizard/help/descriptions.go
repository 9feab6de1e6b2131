package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"date": {
		Title:       "DATE",
		Description: "The date to obfuscate.",
		Details: `Format: YYYY-MM-DD (e.g., 2023-10-26)
Month and day must be zero-padded.
Impossible dates (2023-02-30) are rejected.`,
	},
	"range": {
		Title:       "RANGE",
		Description: "Symmetric variance bound in days.",
		Details: `The output date is drawn uniformly from
[date - |range| days, date + |range| days].
0 keeps the date unchanged. A negative value
means the same interval as its absolute value.`,
	},
	"max_range": {
		Title:       "MAX RANGE",
		Description: "Hard ceiling on the variance range.",
		Details: `Safety clamp against excessive obfuscation.
Requests with |range| > max range are refused.`,
	},
	"format": {
		Title:       "OUTPUT FORMAT",
		Description: "strftime-style output pattern.",
		Details: `Common directives: %Y year, %m month, %d day,
%B month name, %a weekday. Unsupported directives
are printed as-is.`,
	},
	"seed": {
		Title:       "SEED",
		Description: "RNG seed for reproducibility.",
		Details: `0 = auto-generated (different result each run).
Using the same seed ensures the same offset across runs.`,
	},
}
