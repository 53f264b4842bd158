package main

import (
	"fmt"
	"io"

	"github.com/atomistics/rascaline/tensor"
)

// printSummary writes one line per key: its species pair, sample count,
// and gradient sample count (if any "positions" gradient is attached).
func printSummary(w io.Writer, result *tensor.TensorMap) error {
	keys := result.Keys()
	fmt.Fprintf(w, "%d key(s)\n", keys.Count())

	var outerErr error
	keys.Rows(func(i int, row []int64) {
		if outerErr != nil {
			return
		}
		block, err := result.BlockByID(i)
		if err != nil {
			outerErr = err

			return
		}

		gradCount := 0
		if grad, err := block.Gradient("positions"); err == nil {
			gradCount = grad.Samples.Count()
		}

		fmt.Fprintf(w, "  species %v: %d sample(s), %d gradient sample(s)\n",
			row, block.Samples.Count(), gradCount)
	})

	return outerErr
}
