package samples

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

// ThreeBodiesSpeciesSamples enumerates one sample row per
// (structure, center, species_center, species_neighbor_1,
// species_neighbor_2) triplet: for each center c, it forms the Cartesian
// product of PairsContaining(c) with itself, and for every (p, q) pair of
// neighbor-pairs takes the "other" endpoint of each to get two neighbor
// species, emitted with species_neighbor_1 <= species_neighbor_2.
//
// When selfContribution is true, it additionally seeds
// (structure, c, species(c), species(c), species(c)) and, for every pair
// touching c, the "one-body-missing" triplet that treats one neighbor
// slot as the center's own species.
func ThreeBodiesSpeciesSamples(systems []system.System, selfContribution bool) (*labels.Labels, error) {
	set := newRowSet()

	for s, sys := range systems {
		species := sys.Species()
		for c := 0; c < sys.Size(); c++ {
			ac := species[c]
			touching := sys.PairsContaining(c)

			for _, p := range touching {
				for _, q := range touching {
					i := otherEnd(p, c)
					j := otherEnd(q, c)
					lo, hi := orderSpecies(species[i], species[j])
					set.Add(int64(s), int64(c), int64(ac), int64(lo), int64(hi))
				}
			}

			if selfContribution {
				set.Add(int64(s), int64(c), int64(ac), int64(ac), int64(ac))
				for _, p := range touching {
					k := otherEnd(p, c)
					lo, hi := orderSpecies(ac, species[k])
					set.Add(int64(s), int64(c), int64(ac), int64(lo), int64(hi))
				}
			}
		}
	}

	b := labels.NewBuilder("structure", "center", "species_center", "species_neighbor_1", "species_neighbor_2")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}

func otherEnd(p system.Pair, center int) int {
	if p.First == center {
		return p.Second
	}

	return p.First
}

func orderSpecies(a, b system.SpeciesCode) (lo, hi system.SpeciesCode) {
	if a <= b {
		return a, b
	}

	return b, a
}
