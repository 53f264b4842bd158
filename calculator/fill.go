package calculator

import "github.com/atomistics/rascaline/tensor"

// fillBlocks writes the pair-direction values and position gradients for
// every block, given the same perKey grouping used to allocate them.
func fillBlocks(blocks []*tensor.Block, perKey [][]candidateRow) {
	for i, block := range blocks {
		fillValues(block, perKey[i])
		fillGradient(block, perKey[i])
	}
}

func fillValues(block *tensor.Block, rows []candidateRow) {
	properties := block.Properties
	if properties.Count() == 0 {
		return
	}
	propIdx := 0

	for sampleIdx, r := range rows {
		for d := 0; d < 3; d++ {
			_ = block.Values.Set(r.vector[d], sampleIdx, d, propIdx)
		}
	}
}

func fillGradient(block *tensor.Block, rows []candidateRow) {
	grad, err := block.Gradient("positions")
	if err != nil {
		return
	}
	if grad.Properties.Count() == 0 {
		return
	}
	propIdx := 0

	gradRow := 0
	for _, r := range rows {
		first, second := r.sample[2], r.sample[3]
		if first == second {
			continue
		}

		// -I on the diagonal for the pair's first atom.
		for d := 0; d < 3; d++ {
			_ = grad.Values.Set(-1, gradRow, d, d, propIdx)
		}
		gradRow++

		// +I on the diagonal for the pair's second atom.
		for d := 0; d < 3; d++ {
			_ = grad.Values.Set(1, gradRow, d, d, propIdx)
		}
		gradRow++
	}
}
