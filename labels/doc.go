// Package labels implements the ordered, duplicate-free integer-row
// sequences that name every axis of a rascaline tensor: which structure,
// which atom, which species pair, which gradient row.
//
// A Labels value is built once through a Builder and is immutable from
// then on: row order is insertion order, rows are never reordered or
// deduplicated implicitly, and position lookups are O(1) amortised via a
// hash index built at Finish. Two Labels are equal when their column names
// and row sequences match exactly.
package labels
