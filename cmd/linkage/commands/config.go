package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/TrevorS/linkage"
)

// FileConfig is the YAML config file read with --config. Flags given on
// the command line take precedence over file values.
type FileConfig struct {
	// Strategy is the membership strategy ("relabel" or "unionfind").
	Strategy string `yaml:"strategy,omitempty"`

	// CheckAt is the step at which the top-3 product is snapshotted.
	CheckAt int `yaml:"check_at,omitempty"`

	// Format is the output format (yaml, json, table).
	Format string `yaml:"format,omitempty"`
}

// LoadFileConfig reads a FileConfig from path.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &fc, nil
}

// engineConfig converts the file values to a linkage.Config. Zero values
// keep the library defaults.
func (fc *FileConfig) engineConfig() linkage.Config {
	cfg := linkage.DefaultConfig()
	if fc.Strategy != "" {
		cfg.Strategy = linkage.Strategy(fc.Strategy)
	}
	if fc.CheckAt != 0 {
		cfg.CheckAt = fc.CheckAt
	}
	return cfg
}
