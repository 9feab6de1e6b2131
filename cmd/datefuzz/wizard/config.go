package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/types"
)

// Config represents the complete wizard configuration for YAML serialization.
type Config struct {
	Params ParamsConfigYAML `yaml:"params"`
}

// ParamsConfigYAML holds obfuscation parameters with YAML tags for
// serialization.
type ParamsConfigYAML struct {
	Date     string `yaml:"date"`
	Range    int    `yaml:"range"`
	MaxRange int    `yaml:"max_range"`
	Format   string `yaml:"format"`
	Seed     int64  `yaml:"seed,omitempty"`
}

// SaveToYAML writes the wizard state to a YAML config file.
func SaveToYAML(state *WizardState, path string) error {
	cfg := Config{
		Params: ParamsConfigYAML{
			Date:     state.Params.Date,
			Range:    state.Params.RangeDays,
			MaxRange: state.Params.MaxRange,
			Format:   state.Params.Format,
			Seed:     state.Params.Seed,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadFromYAML reads a YAML config file into a wizard state. Absent fields
// fall back to the CLI defaults when converted to options.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &WizardState{
		Params: types.ParamsConfig{
			Date:      cfg.Params.Date,
			RangeDays: cfg.Params.Range,
			MaxRange:  cfg.Params.MaxRange,
			Format:    cfg.Params.Format,
			Seed:      cfg.Params.Seed,
		},
	}, nil
}
