// Package system defines the polymorphic System capability set (size,
// species, positions, cell, neighbor search) that every rascaline
// calculator consumes, the Vector3/Matrix3 geometry primitives, the Pair
// record produced by neighbor search, and species-pair canonicalisation.
//
// System is intentionally a small interface rather than a concrete type:
// a foreign-language implementation (scripting bindings, a trajectory
// reader) need only satisfy these seven operations. SimpleSystem is the
// package's own reference implementation, a brute-force minimum-image
// neighbor list over an in-memory point set, used directly by tests and
// by callers with no better System of their own.
package system
