package calculator

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawConfig mirrors the serialized form of §6: a textual key-value
// encoding with a required cutoff and full_neighbor_list flag.
type rawConfig struct {
	Cutoff           float64 `yaml:"cutoff"`
	FullNeighborList *bool   `yaml:"full_neighbor_list"`
}

// ParseConfig decodes a YAML document into a Config and validates it.
// Both keys are required by §6; a missing cutoff decodes as zero, which
// Validate then rejects as ErrInvalidParameter, and a missing
// full_neighbor_list is rejected as ErrInvalidParameter too.
func ParseConfig(data []byte) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("calculator: parsing config: %w", err)
	}
	if raw.FullNeighborList == nil {
		return Config{}, fmt.Errorf("%w: full_neighbor_list is required", ErrInvalidParameter)
	}

	cfg := Config{Cutoff: raw.Cutoff, FullNeighborList: *raw.FullNeighborList}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
