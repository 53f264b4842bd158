package system

// Canon canonicalises a pair of species codes for half-neighbor-list
// bookkeeping: canon(i, j) = ((species(i), species(j)), false) if
// species(i) <= species(j), else ((species(j), species(i)), true).
//
// Canonicalisation is strictly on species order, independent of atom index
// order. When the two species are equal, no inversion occurs (a stable
// tie-break).
func Canon(speciesFirst, speciesSecond SpeciesCode) (first, second SpeciesCode, inverted bool) {
	if speciesFirst <= speciesSecond {
		return speciesFirst, speciesSecond, false
	}

	return speciesSecond, speciesFirst, true
}
