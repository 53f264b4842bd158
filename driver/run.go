package driver

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/atomistics/rascaline/calculator"
	"github.com/atomistics/rascaline/system"
	"github.com/atomistics/rascaline/tensor"
)

// Run is the single entry point that orchestrates a Calculator over a
// batch of systems: it calls calc.Compute(systems, selection), wraps any
// returned error exactly once with "driver.Run: %w", and recovers a panic
// escaping Compute (a calculator internal invariant violation: a skipped
// state-machine step, or a pair whose species have no outer key) into
// calculator.ErrInternal carrying a spew.Sdump of the panic value, the
// number of systems, and the selection as diagnostic context.
//
// Run never spawns goroutines: Non-goals exclude parallel neighbor-list
// construction, so systems are processed by Compute strictly in order.
func Run(calc *calculator.Calculator, systems []system.System, selection calculator.Selection) (result *tensor.TensorMap, err error) {
	defer func() {
		if r := recover(); r != nil {
			diag := spew.Sdump(map[string]interface{}{
				"panic":     r,
				"systems":   len(systems),
				"selection": selection,
			})
			err = errors.Wrapf(calculator.ErrInternal, "driver.Run: recovered panic: %v\n%s", r, diag)
			result = nil
		}
	}()

	out, err := calc.Compute(systems, selection)
	if err != nil {
		return nil, fmt.Errorf("driver.Run: %w", err)
	}

	return out, nil
}
