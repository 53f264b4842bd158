// Package samples enumerates the sample rows (and their matching gradient
// rows) of a rascaline calculation: which (structure, center, species...)
// tuple each row of output refers to. Every builder here deduplicates
// through rowSet, an ordered set that never exposes map-iteration order,
// and finishes by sorting ascending and re-inserting into a
// labels.Builder — so the resulting Labels are reproducible across runs
// regardless of Go's randomized map iteration.
package samples
