package keys

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

// PairSpeciesKeys enumerates the species-pair keys of a neighbor-list
// calculation: columns (species_first_atom, species_second_atom). In half
// mode, every unordered pair contributes its species-canonicalised key
// once (system.Canon order). In full mode, every pair contributes both
// the (species(first), species(second)) key and its reverse, except that
// a self-pair (first == second) contributes only the one key it has.
func PairSpeciesKeys(systems []system.System, full bool) (*labels.Labels, error) {
	set := newRowSet()

	for _, sys := range systems {
		species := sys.Species()
		for _, p := range sys.Pairs() {
			ai, aj := species[p.First], species[p.Second]
			if !full {
				lo, hi, _ := system.Canon(ai, aj)
				set.Add(int64(lo), int64(hi))

				continue
			}

			set.Add(int64(ai), int64(aj))
			if p.First != p.Second {
				set.Add(int64(aj), int64(ai))
			}
		}
	}

	b := labels.NewBuilder("species_first_atom", "species_second_atom")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}
