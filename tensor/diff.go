package tensor

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffString renders a unified diff between the string forms of two
// values, for readable Block assertion failures in tests.
func DiffString(name string, want, got fmt.Stringer) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want.String()),
		B:        difflib.SplitLines(got.String()),
		FromFile: "want " + name,
		ToFile:   "got " + name,
		Context:  2,
	}

	return difflib.GetUnifiedDiffString(diff)
}

// String renders a Block's values one element per line, as "[index] =
// value" in row-major order, primarily for DiffString.
func (b *Block) String() string {
	shape := b.Values.Shape()
	total := 1
	for _, d := range shape {
		total *= d
	}
	idx := make([]int, len(shape))
	out := ""
	for flat := 0; flat < total; flat++ {
		decode(flat, shape, idx)
		v, _ := b.Values.At(idx...)
		out += fmt.Sprintf("%v = %g\n", idx, v)
	}

	return out
}
