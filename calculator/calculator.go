package calculator

import (
	"fmt"

	"github.com/atomistics/rascaline/keys"
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
	"github.com/atomistics/rascaline/tensor"
)

// Calculator is the reference neighbor-list calculator: given a batch of
// systems, it produces a TensorMap of pair-direction vectors keyed by
// species pair, with analytic position gradients attached.
type Calculator struct {
	cfg Config
}

// NewCalculator builds a Calculator from the given Options over
// defaultConfig, validating the result. A non-positive or non-finite
// cutoff is returned as ErrInvalidParameter rather than a panic: bad
// configuration is a recoverable condition for a library entry point.
func NewCalculator(opts ...Option) (*Calculator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Calculator{cfg: cfg}, nil
}

// Config returns the Calculator's resolved configuration.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Selection restricts a Compute call to a subset of sample rows and/or
// property columns. A nil field means "all"; a non-nil Labels restricts
// fill to exactly the rows it names (§8 E4) — rows outside the selection
// are absent from the result, never present-but-zeroed.
type Selection struct {
	Samples    *labels.Labels
	Properties *labels.Labels
}

// candidateRow is one fully-resolved pair orientation before Selection
// filtering: the key it belongs to, its sample tuple, and the direction
// vector to write.
type candidateRow struct {
	key    [2]int64
	sample [4]int64 // structure, pair_id, first_atom, second_atom
	vector system.Vector3
}

// Compute runs the five-stage pipeline described in doc.go over systems,
// returning a TensorMap restricted to selection. Each system's neighbor
// list is (re)computed at the Calculator's cutoff exactly once.
//
// Failure leaves no partial TensorMap visible to the caller: Compute
// either returns a fully filled map or a nil map and an error.
func (c *Calculator) Compute(systems []system.System, selection Selection) (*tensor.TensorMap, error) {
	stg := stageIdle

	for _, sys := range systems {
		if err := sys.ComputeNeighbors(c.cfg.Cutoff); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborList, err)
		}
	}

	stg = mustAdvance(stg, stageKeysBuilt)
	outerKeys, err := keys.PairSpeciesKeys(systems, c.cfg.FullNeighborList)
	if err != nil {
		return nil, fmt.Errorf("calculator: building keys: %w", err)
	}

	candidates := c.enumerateCandidates(systems)

	stg = mustAdvance(stg, stageSamplesBuilt)
	perKey := groupByKey(outerKeys, candidates, selection.Samples)

	stg = mustAdvance(stg, stageAllocated)
	blocks, err := c.allocateBlocks(perKey, selection.Properties)
	if err != nil {
		return nil, err
	}

	stg = mustAdvance(stg, stageFilled)
	fillBlocks(blocks, perKey)

	// Pipeline complete; the state machine resets to idle implicitly, since
	// stg is local to this call and Filled is always its terminal value.
	_ = stg

	return tensor.NewTensorMap(outerKeys, blocks)
}

// enumerateCandidates walks every system's neighbor list once, producing
// one candidateRow per half-list entry or two per full-list entry (one
// per orientation, skipping the duplicate for an unconditional self-pair).
func (c *Calculator) enumerateCandidates(systems []system.System) []candidateRow {
	var out []candidateRow

	for s, sys := range systems {
		species := sys.Species()
		for k, p := range sys.Pairs() {
			ai, aj := species[p.First], species[p.Second]

			if !c.cfg.FullNeighborList {
				lo, hi, inverted := system.Canon(ai, aj)
				first, second, vec := p.First, p.Second, p.Vector
				if inverted {
					first, second, vec = second, first, vec.Neg()
				}
				out = append(out, candidateRow{
					key:    [2]int64{int64(lo), int64(hi)},
					sample: [4]int64{int64(s), int64(k), int64(first), int64(second)},
					vector: vec,
				})

				continue
			}

			out = append(out, candidateRow{
				key:    [2]int64{int64(ai), int64(aj)},
				sample: [4]int64{int64(s), int64(k), int64(p.First), int64(p.Second)},
				vector: p.Vector,
			})
			if p.First != p.Second {
				out = append(out, candidateRow{
					key:    [2]int64{int64(aj), int64(ai)},
					sample: [4]int64{int64(s), int64(k), int64(p.Second), int64(p.First)},
					vector: p.Vector.Neg(),
				})
			}
		}
	}

	return out
}

// groupByKey buckets candidates by their outer key, in outerKeys' row
// order, filtering by sampleSelection when non-nil. Candidate order
// within a bucket is the iteration order of enumerateCandidates, which is
// itself a deterministic function of system/pair index — never a map
// iteration.
func groupByKey(outerKeys *labels.Labels, candidates []candidateRow, sampleSelection *labels.Labels) [][]candidateRow {
	perKey := make([][]candidateRow, outerKeys.Count())

	for _, cand := range candidates {
		idx, ok := outerKeys.Position(cand.key[0], cand.key[1])
		if !ok {
			panic("calculator: " + ErrInternal.Error())
		}
		if sampleSelection != nil {
			if _, selected := sampleSelection.Position(cand.sample[0], cand.sample[1], cand.sample[2], cand.sample[3]); !selected {
				continue
			}
		}
		perKey[idx] = append(perKey[idx], cand)
	}

	return perKey
}
