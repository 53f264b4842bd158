package system

import (
	"encoding/binary"
	"math"

	"lukechampine.com/blake3"
)

// fingerprint returns a content hash of a cutoff and a geometry, used by
// SimpleSystem to decide whether a cached neighbor list may be reused: the
// spec requires ComputeNeighbors to "cache by cutoff but recompute on
// change", and a geometry that mutates in place (same slice, new values)
// would otherwise be indistinguishable from a cache hit on cutoff alone.
func fingerprint(cutoff float64, positions []Vector3, cell Matrix3, species []SpeciesCode) [32]byte {
	h := blake3.New(32, nil)

	var buf [8]byte
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}

	writeFloat(cutoff)
	for _, s := range species {
		writeInt(int64(s))
	}
	for _, p := range positions {
		writeFloat(p[0])
		writeFloat(p[1])
		writeFloat(p[2])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			writeFloat(cell[i][j])
		}
	}

	var out [32]byte
	sum := h.Sum(nil)
	copy(out[:], sum)

	return out
}
