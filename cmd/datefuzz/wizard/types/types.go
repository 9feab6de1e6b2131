// Package types holds the wizard configuration types shared between the
// orchestrator and the screens.
package types

// ParamsConfig holds the obfuscation parameters collected by the wizard.
type ParamsConfig struct {
	Date      string
	RangeDays int
	MaxRange  int
	Format    string
	Seed      int64
}
