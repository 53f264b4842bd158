// Package calculator implements the neighbor-list reference calculator:
// the end-to-end pipeline that turns a batch of system.System values into
// a tensor.TensorMap of pair-direction vectors and their position
// gradients, keyed by species pair.
//
// # Compute pipeline
//
// Steps:
//  1. Idle: compute every system's neighbor list at the configured cutoff
//     (the Config itself was validated by NewCalculator).
//  2. KeysBuilt: call keys.PairSpeciesKeys over every system to get the
//     outer species-pair key Labels.
//  3. SamplesBuilt: for every key, collect the sample rows
//     (structure, pair_id, first_atom, second_atom) that belong to it.
//  4. Allocated: build one tensor.Block per key, with a component axis
//     "pair_direction" of 3 rows and a property axis "distance" of 1 row,
//     plus a zero-filled GradientBlock under parameter "positions".
//  5. Filled: walk each block's sample rows, writing the pair vector into
//     the values and the ±I gradient rows.
//  6. Idle: return the completed TensorMap, or discard it on error.
//
// Each system's neighbor list is computed exactly once per Compute call,
// at the configured cutoff.
package calculator
