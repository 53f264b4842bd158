package keys

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

// CenterPlusNeighborSpeciesKeys enumerates one key per distinct
// (species_center, species_neighbor) pair observed across every system's
// neighbor list, columns (species_center, species_neighbor). Unlike
// PairSpeciesKeys this is always directional: a pair (i, j) contributes
// both (species(i), species(j)) with i as center and (species(j),
// species(i)) with j as center, matching the per-center block layout that
// AtomCenteredSamples builds rows for. When selfContribution is true, it
// additionally contributes (species(c), species(c)) for every atom c.
func CenterPlusNeighborSpeciesKeys(systems []system.System, selfContribution bool) (*labels.Labels, error) {
	set := newRowSet()

	for _, sys := range systems {
		species := sys.Species()
		for _, p := range sys.Pairs() {
			ai, aj := species[p.First], species[p.Second]
			set.Add(int64(ai), int64(aj))
			set.Add(int64(aj), int64(ai))
		}
		if selfContribution {
			for _, sp := range species {
				set.Add(int64(sp), int64(sp))
			}
		}
	}

	b := labels.NewBuilder("species_center", "species_neighbor")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}
