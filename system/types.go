package system

import (
	"errors"
	"math"
)

// Sentinel errors for the system package.
var (
	// ErrUnsupported signals that a System implementation cannot perform a
	// requested operation (e.g. a foreign-language binding with no neighbor
	// search support). Calculators treat it as a recoverable NeighborList
	// error, never a crash.
	ErrUnsupported = errors.New("system: operation not supported by this System")

	// ErrNeighborList signals a failure of neighbor search itself.
	// SimpleSystem does not return it: its only ComputeNeighbors failure is
	// ErrInvalidCutoff.
	ErrNeighborList = errors.New("system: neighbor list computation failed")

	// ErrInvalidCutoff indicates a non-positive or non-finite cutoff was
	// requested of ComputeNeighbors.
	ErrInvalidCutoff = errors.New("system: cutoff must be positive and finite")
)

// SpeciesCode identifies a chemical element, or a pseudo-element. The code
// space is open: the library never interprets values beyond equality and
// ordering.
type SpeciesCode int32

// Vector3 is a triple of 64-bit floats.
type Vector3 [3]float64

// Add returns the component-wise sum of v and w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the component-wise difference v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Neg returns the negation of v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Matrix3 is a row-major 3x3 matrix. The zero matrix denotes the absence
// of a unit cell ("infinite" / non-periodic system).
type Matrix3 [3][3]float64

// IsZero reports whether m is the zero matrix (no periodic cell).
func (m Matrix3) IsZero() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if m[i][j] != 0 {
				return false
			}
		}
	}

	return true
}

// MulVec returns m * v, treating v as a column vector.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	var out Vector3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// Pair is the canonical neighbor record produced by a System's neighbor
// search: two atom indices, the minimum-image displacement vector from
// First to Second, and its length.
//
// Invariants enforced by any conforming System: each unordered pair (i,j)
// with i != j appears at most once; self-pairs (i,i) appear only under
// periodic boundary conditions and never at zero distance; every reported
// pair satisfies |Vector| <= cutoff.
type Pair struct {
	First    int
	Second   int
	Vector   Vector3
	Distance float64
}

// System is the capability set a rascaline calculator consumes: atom
// count, species, positions, unit cell, and a neighbor list keyed by a
// spherical cutoff. All accessors are synchronous and in-memory; there are
// no suspension points. ComputeNeighbors may be called repeatedly across
// calculators; an implementation may cache by cutoff but must recompute on
// change.
type System interface {
	// Size returns the number of atoms.
	Size() int

	// Species returns the species code of every atom, length Size().
	Species() []SpeciesCode

	// Positions returns the Cartesian position of every atom, length Size().
	Positions() []Vector3

	// Cell returns the unit cell, or the zero Matrix3 if non-periodic.
	Cell() Matrix3

	// ComputeNeighbors (re)computes the neighbor list at the given cutoff.
	// It is idempotent for repeated calls at the same cutoff.
	ComputeNeighbors(cutoff float64) error

	// Pairs returns every pair found by the most recent ComputeNeighbors,
	// in a stable, re-derivable order.
	Pairs() []Pair

	// PairsContaining returns every pair where i is First or Second, each
	// such pair appearing exactly once.
	PairsContaining(i int) []Pair
}
