package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomistics/rascaline/system"
)

// systemDocument is the on-disk YAML shape for one system: a flat species
// list, one position triple per atom, and an optional 3x3 cell (omitted
// or all-zero for a non-periodic system).
type systemDocument struct {
	Species   []int32        `yaml:"species"`
	Positions [][3]float64   `yaml:"positions"`
	Cell      *[3][3]float64 `yaml:"cell"`
}

// loadSystems reads a YAML document containing a list of systemDocuments
// and builds a system.SimpleSystem for each.
func loadSystems(path string) ([]system.System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rascaline: reading systems file: %w", err)
	}

	var docs []systemDocument
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("rascaline: parsing systems file: %w", err)
	}

	out := make([]system.System, 0, len(docs))
	for i, doc := range docs {
		if len(doc.Species) != len(doc.Positions) {
			return nil, fmt.Errorf("rascaline: system %d: species/positions length mismatch", i)
		}

		species := make([]system.SpeciesCode, len(doc.Species))
		for j, s := range doc.Species {
			species[j] = system.SpeciesCode(s)
		}

		positions := make([]system.Vector3, len(doc.Positions))
		for j, p := range doc.Positions {
			positions[j] = system.Vector3(p)
		}

		var cell system.Matrix3
		if doc.Cell != nil {
			cell = system.Matrix3(*doc.Cell)
		}

		out = append(out, system.NewSimpleSystem(species, positions, cell))
	}

	return out, nil
}
