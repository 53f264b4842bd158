package calculator

import (
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/tensor"
)

// distanceProperty builds the single "distance" property row, restricted
// by propertySelection when non-nil. An empty result (selection excludes
// the only property) is valid: the block's property axis has zero length
// and no values are ever written to it.
func distanceProperty(propertySelection *labels.Labels) *labels.Labels {
	if propertySelection != nil {
		if _, ok := propertySelection.Position(0); !ok {
			return labels.Empty("distance")
		}
	}

	return labels.Single("distance", 0)
}

// allocateBlocks builds one zero-filled Block per outer key, its samples
// drawn from perKey[i], and attaches a zero-filled "positions" gradient
// block sized to match.
func (c *Calculator) allocateBlocks(perKey [][]candidateRow, propertySelection *labels.Labels) ([]*tensor.Block, error) {
	pairDir := labels.Single("pair_direction", 0, 1, 2)
	gradDir := labels.Single("gradient_direction", 0, 1, 2)
	properties := distanceProperty(propertySelection)

	blocks := make([]*tensor.Block, len(perKey))
	for i, rows := range perKey {
		sampleLabels, err := buildSampleLabels(rows)
		if err != nil {
			return nil, err
		}

		block, err := tensor.NewBlock(sampleLabels, []*labels.Labels{pairDir}, properties)
		if err != nil {
			return nil, err
		}

		gradSamples, err := buildGradientSampleLabels(rows)
		if err != nil {
			return nil, err
		}
		grad, err := tensor.NewGradientBlock(gradSamples, []*labels.Labels{pairDir, gradDir}, properties)
		if err != nil {
			return nil, err
		}
		block.AddGradient("positions", grad)

		blocks[i] = block
	}

	return blocks, nil
}

func buildSampleLabels(rows []candidateRow) (*labels.Labels, error) {
	b := labels.NewBuilder("structure", "pair_id", "first_atom", "second_atom")
	for _, r := range rows {
		if err := b.Add(r.sample[0], r.sample[1], r.sample[2], r.sample[3]); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}

// buildGradientSampleLabels emits, per sample row (in order), a row for
// the pair's first atom and one for its second atom — skipping self-pairs
// entirely, since a self-pair's vector is a fixed lattice translation
// independent of the shared atom's own position, and its two otherwise
// non-zero contributions (-I and +I on the same atom) cancel to zero.
func buildGradientSampleLabels(rows []candidateRow) (*labels.Labels, error) {
	b := labels.NewBuilder("sample", "structure", "atom")
	for sampleIdx, r := range rows {
		structure, first, second := r.sample[0], r.sample[2], r.sample[3]
		if first == second {
			continue
		}
		if err := b.Add(int64(sampleIdx), structure, first); err != nil {
			return nil, err
		}
		if err := b.Add(int64(sampleIdx), structure, second); err != nil {
			return nil, err
		}
	}

	return b.Finish(), nil
}
