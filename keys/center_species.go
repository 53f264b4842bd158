package keys

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

// CenterSpeciesKeys enumerates one key per species value that appears as
// an atom in any system, column "species_center". Every atom contributes
// regardless of whether it has any neighbors, since a center-species
// block may legitimately hold only self-contribution samples.
func CenterSpeciesKeys(systems []system.System) (*labels.Labels, error) {
	set := newRowSet()

	for _, sys := range systems {
		for _, sp := range sys.Species() {
			set.Add(int64(sp))
		}
	}

	b := labels.NewBuilder("species_center")
	for _, row := range set.Sorted() {
		if err := b.Add(row...); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}
