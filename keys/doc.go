// Package keys enumerates the outer-axis keys of a rascaline TensorMap —
// species-pair, center-species, and center-plus-one-neighbor-species
// tuples — by scanning neighbor lists (or, for center-species keys, atom
// species) across all systems. Every builder
// here sorts its output ascending before inserting into a labels.Builder,
// so key order is reproducible independent of map iteration.
package keys
