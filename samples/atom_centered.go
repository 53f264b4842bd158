package samples

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

// AtomCenteredSamples enumerates one sample row per
// (structure, center, species_center, species_neighbor) tuple observed
// across systems' neighbor lists: for every pair (i, j), it emits both
// orientations (i as center, j as neighbor) and (j as center, i as
// neighbor). When selfContribution is true, it additionally emits
// (structure, c, species(c), species(c)) for every center c, independent
// of whether c has any neighbors.
func AtomCenteredSamples(systems []system.System, selfContribution bool) (*labels.Labels, error) {
	set := newRowSet()

	for s, sys := range systems {
		species := sys.Species()
		for _, p := range sys.Pairs() {
			i, j := p.First, p.Second
			ai, aj := species[i], species[j]
			set.Add(int64(s), int64(i), int64(ai), int64(aj))
			set.Add(int64(s), int64(j), int64(aj), int64(ai))
		}
		if selfContribution {
			for c := 0; c < sys.Size(); c++ {
				ac := species[c]
				set.Add(int64(s), int64(c), int64(ac), int64(ac))
			}
		}
	}

	b := labels.NewBuilder("structure", "center", "species_center", "species_neighbor")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}

// AtomCenteredGradientSamples builds the gradient-row Labels matching
// sampleRows (as produced by AtomCenteredSamples): for every sample row
// (s, c, species_center, species_neighbor), it looks at
// system.PairsContaining(c) and, for each pair whose far end k has
// species_neighbor, emits a gradient row for k and one for c itself (the
// "self-gradient row") — the two atoms whose position the pair vector's
// derivative is non-zero with respect to. Rows are
// (sample, structure, atom), one per (sample, atom) pair; the direction
// (x/y/z) axis is carried by the GradientBlock's own component Labels,
// not duplicated into the sample row, mirroring the "components" versus
// "samples" split in tensor.GradientBlock.
func AtomCenteredGradientSamples(systems []system.System, sampleRows *labels.Labels) (*labels.Labels, error) {
	set := newRowSet()

	var outerErr error
	sampleRows.Rows(func(sampleIdx int, row []int64) {
		if outerErr != nil {
			return
		}
		structureIdx := int(row[0])
		center := int(row[1])
		speciesNeighbor := system.SpeciesCode(row[3])

		sys := systems[structureIdx]
		for _, p := range sys.PairsContaining(center) {
			far := p.First
			if far == center {
				far = p.Second
			}
			if sys.Species()[far] != speciesNeighbor {
				continue
			}
			set.Add(int64(sampleIdx), int64(structureIdx), int64(far))
			set.Add(int64(sampleIdx), int64(structureIdx), int64(center))
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
