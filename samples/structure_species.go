package samples

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

// StructureSpeciesSamples enumerates one sample row per (structure,
// species) pair: every species present in each system contributes exactly
// one row, regardless of how many atoms of that species it has.
func StructureSpeciesSamples(systems []system.System) (*labels.Labels, error) {
	set := newRowSet()

	for s, sys := range systems {
		for _, a := range sys.Species() {
			set.Add(int64(s), int64(a))
		}
	}

	b := labels.NewBuilder("structure", "species")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}

// StructureSpeciesGradientSamples builds the gradient-row Labels matching
// sampleRows (as produced by StructureSpeciesSamples): every atom i with
// species matching the (structure, species) sample row contributes one
// gradient row (sample, structure, atom).
func StructureSpeciesGradientSamples(systems []system.System, sampleRows *labels.Labels) (*labels.Labels, error) {
	set := newRowSet()

	var outerErr error
	sampleRows.Rows(func(sampleIdx int, row []int64) {
		if outerErr != nil {
			return
		}
		structureIdx := int(row[0])
		species := system.SpeciesCode(row[1])

		sys := systems[structureIdx]
		for atom, a := range sys.Species() {
			if a == species {
				set.Add(int64(sampleIdx), int64(structureIdx), int64(atom))
			}
		}
	})
	if outerErr != nil {
		return nil, outerErr
	}

	b := labels.NewBuilder("sample", "structure", "atom")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}
