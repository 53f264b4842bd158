package calculator

import "errors"

// Sentinel errors for the calculator package, matching §7's taxonomy.
// InvalidParameter, NeighborList, and LabelShape are recoverable and
// returned to the caller; Internal is a programmer-error invariant
// violation and is only ever produced via panic recovery in the driver.
var (
	// ErrInvalidParameter indicates a non-positive or non-finite cutoff.
	ErrInvalidParameter = errors.New("calculator: invalid parameter")

	// ErrNeighborList wraps a failure propagated from a System's
	// ComputeNeighbors.
	ErrNeighborList = errors.New("calculator: neighbor list computation failed")

	// ErrLabelShape indicates a Labels value built during the pipeline does
	// not have the shape a later stage requires.
	ErrLabelShape = errors.New("calculator: label shape mismatch")

	// ErrMissingGradientSample indicates a gradient row referenced a sample
	// index that does not exist in the parent block's samples.
	ErrMissingGradientSample = errors.New("calculator: missing gradient sample")

	// ErrInternal indicates an invariant the key/sample builders are
	// supposed to guarantee was violated — a species pair observed during
	// fill has no matching block. This must never happen for consistent
	// key/sample construction; it signals a bug, not bad input.
	ErrInternal = errors.New("calculator: internal invariant violation")
)
