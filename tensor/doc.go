// Package tensor implements the block-structured output container of
// rascaline: a TensorMap is a Labels-keyed sequence of Blocks, and each
// Block carries a dense NDArray of values over (samples, components...,
// properties) plus zero or more named GradientBlocks.
//
// After construction, a TensorMap's keys, block shapes, and axis labels
// are immutable; only numeric values and gradient values may be mutated.
// Two *Block handles obtained via BlockMutByID for different blocks are
// always safe to use at once: each Block owns its own storage, and there
// is no global lock to contend on.
package tensor
