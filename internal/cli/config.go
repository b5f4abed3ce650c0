package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/crossbench/pkg/errors"
)

// benchConfig is the TOML schema for bench configuration files.
// See examples/bench.toml for a complete example.
type benchConfig struct {
	// Layers is the gate count per layer.
	Layers []int `toml:"layers"`

	// Connections is the connection count per adjacent-layer gap.
	Connections []int `toml:"connections"`

	// Trials is the number of seeds to sample.
	Trials int `toml:"trials"`

	// Arranger selects a registered arrangement algorithm by name.
	Arranger string `toml:"arranger"`

	// Workers is the number of goroutines sampling trials.
	Workers int `toml:"workers"`
}

// loadBenchConfig reads and decodes a TOML bench configuration file.
func loadBenchConfig(path string) (*benchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	var cfg benchConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config %s", path)
	}
	return &cfg, nil
}
