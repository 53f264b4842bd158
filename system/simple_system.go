package system

import (
	"math"

	pkgerrors "github.com/pkg/errors"
)

// SimpleSystem is the package's reference System: a fixed set of atoms at
// fixed positions, optionally periodic, with a brute-force minimum-image
// neighbor search. It is the System most callers reach for directly, and
// the one every builder/calculator test in this module is written
// against.
type SimpleSystem struct {
	species   []SpeciesCode
	positions []Vector3
	cell      Matrix3

	cutoff      float64
	fingerprint [32]byte
	computed    bool
	pairs       []Pair
	byAtom      [][]int // byAtom[i] = indices into pairs touching atom i
}

// NewSimpleSystem builds a SimpleSystem over the given species and
// positions, with an optional periodic cell (pass the zero Matrix3 for a
// non-periodic system). len(species) must equal len(positions); callers
// that violate this invariant get a System whose Size() is the shorter of
// the two, since the library has no recoverable-error path at construction
// time for this programmer mistake (mirrors core.NewGraph's unchecked
// zero-value constructor in the teacher).
func NewSimpleSystem(species []SpeciesCode, positions []Vector3, cell Matrix3) *SimpleSystem {
	s := &SimpleSystem{
		species:   append([]SpeciesCode(nil), species...),
		positions: append([]Vector3(nil), positions...),
		cell:      cell,
	}

	return s
}

// Size returns the number of atoms.
func (s *SimpleSystem) Size() int {
	if len(s.positions) < len(s.species) {
		return len(s.positions)
	}

	return len(s.species)
}

// Species returns every atom's species code.
func (s *SimpleSystem) Species() []SpeciesCode {
	out := make([]SpeciesCode, s.Size())
	copy(out, s.species)

	return out
}

// Positions returns every atom's position.
func (s *SimpleSystem) Positions() []Vector3 {
	out := make([]Vector3, s.Size())
	copy(out, s.positions)

	return out
}

// Cell returns the unit cell, or the zero Matrix3 for a non-periodic
// system.
func (s *SimpleSystem) Cell() Matrix3 {
	return s.cell
}

// ComputeNeighbors (re)computes the neighbor list at the given cutoff. It
// is idempotent: a second call at the same cutoff over unchanged geometry
// is a no-op, detected via a content fingerprint rather than the cutoff
// value alone.
func (s *SimpleSystem) ComputeNeighbors(cutoff float64) error {
	if cutoff <= 0 || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return pkgerrors.Wrap(ErrInvalidCutoff, "ComputeNeighbors")
	}

	fp := fingerprint(cutoff, s.positions, s.cell, s.species)
	if s.computed && fp == s.fingerprint {
		return nil
	}

	pairs, err := bruteForceNeighbors(s.positions, s.cell, cutoff)
	if err != nil {
		return pkgerrors.Wrap(err, "ComputeNeighbors")
	}

	s.cutoff = cutoff
	s.fingerprint = fp
	s.computed = true
	s.pairs = pairs
	s.byAtom = indexPairsByAtom(s.Size(), pairs)

	return nil
}

// Pairs returns every pair found by the most recent ComputeNeighbors, in
// the stable order they were generated (this order is what backs the
// pair_id sample column in the neighbor-list calculator).
func (s *SimpleSystem) Pairs() []Pair {
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)

	return out
}

// PairsContaining returns every pair where i is First or Second.
func (s *SimpleSystem) PairsContaining(i int) []Pair {
	if i < 0 || i >= len(s.byAtom) {
		return nil
	}
	idxs := s.byAtom[i]
	out := make([]Pair, len(idxs))
	for k, idx := range idxs {
		out[k] = s.pairs[idx]
	}

	return out
}

func indexPairsByAtom(size int, pairs []Pair) [][]int {
	byAtom := make([][]int, size)
	for idx, p := range pairs {
		byAtom[p.First] = append(byAtom[p.First], idx)
		if p.Second != p.First {
			byAtom[p.Second] = append(byAtom[p.Second], idx)
		}
	}

	return byAtom
}

// bruteForceNeighbors enumerates every pair of atoms (including self-pairs
// under periodicity) whose minimum-image-or-periodic-image distance is at
// most cutoff. For i != j, every periodic image within cutoff is reported
// (not only the nearest), since a cutoff exceeding the cell size can
// legitimately put several images of the same atom pair within range; this
// is why callers disambiguate same-index pairs by pair_id rather than by
// (first_atom, second_atom) alone. For i == j, only one representative of
// each +/-shift pair is reported (the lexicographically positive shift),
// and the zero shift (distance 0) is always excluded.
func bruteForceNeighbors(positions []Vector3, cell Matrix3, cutoff float64) ([]Pair, error) {
	n := len(positions)
	shifts := latticeShifts(cell, cutoff)

	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for _, shift := range shifts {
				if i == j && !lexicographicPositive(shift) {
					continue
				}
				image := cell.MulVec(Vector3{float64(shift[0]), float64(shift[1]), float64(shift[2])})
				vec := positions[j].Add(image).Sub(positions[i])
				dist := vec.Norm()
				if i == j && dist == 0 {
					continue
				}
				if dist <= cutoff {
					pairs = append(pairs, Pair{First: i, Second: j, Vector: vec, Distance: dist})
				}
			}
		}
	}

	return pairs, nil
}

func lexicographicPositive(shift [3]int) bool {
	if shift[0] != 0 {
		return shift[0] > 0
	}
	if shift[1] != 0 {
		return shift[1] > 0
	}

	return shift[2] > 0
}

// latticeShifts returns every integer lattice shift (n1, n2, n3) whose
// cell image could bring two atoms within cutoff of each other, derived
// from the cell's perpendicular widths (volume / area of the opposite
// face), the standard bound used by cell-list neighbor searches. A zero
// cell (non-periodic system) yields only the zero shift.
func latticeShifts(cell Matrix3, cutoff float64) [][3]int {
	if cell.IsZero() {
		return [][3]int{{0, 0, 0}}
	}

	a, b, c := cell[0], cell[1], cell[2]
	volume := math.Abs(a.Dot(cross(b, c)))
	if volume == 0 {
		// Degenerate cell (linearly dependent vectors): fall back to a
		// small fixed search range rather than dividing by zero.
		return fixedShiftRange(2)
	}

	widthA := volume / cross(b, c).Norm()
	widthB := volume / cross(a, c).Norm()
	widthC := volume / cross(a, b).Norm()

	na := int(math.Ceil(cutoff / widthA))
	nb := int(math.Ceil(cutoff / widthB))
	nc := int(math.Ceil(cutoff / widthC))

	var shifts [][3]int
	for i := -na; i <= na; i++ {
		for j := -nb; j <= nb; j++ {
			for k := -nc; k <= nc; k++ {
				shifts = append(shifts, [3]int{i, j, k})
			}
		}
	}

	return shifts
}

func fixedShiftRange(n int) [][3]int {
	var shifts [][3]int
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			for k := -n; k <= n; k++ {
				shifts = append(shifts, [3]int{i, j, k})
			}
		}
	}

	return shifts
}

func cross(v, w Vector3) Vector3 {
	return Vector3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}
