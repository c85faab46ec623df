package cmd

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/edusim/edusim/sim"
)

// LoadScenario parses a YAML scenario file into a sim.Config. An empty path
// yields the zero-value scenario, which runs entirely on documented factor
// defaults. Unknown keys are errors (strict field checking); absent keys are
// not, and resolve to per-factor defaults inside the engine.
func LoadScenario(path string) (*sim.Config, error) {
	if path == "" {
		return &sim.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg sim.Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
