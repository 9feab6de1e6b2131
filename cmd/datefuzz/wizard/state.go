// Package wizard provides an interactive TUI for configuring date obfuscation.
package wizard

import "github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/types"

// WizardState holds the complete state for the wizard interface.
type WizardState struct {
	Params types.ParamsConfig
}
