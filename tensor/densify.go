package tensor

import (
	"errors"

	"github.com/atomistics/rascaline/labels"
)

// ErrNoSuchKeyColumn indicates Densify was asked to move a key column that
// does not exist on the TensorMap.
var ErrNoSuchKeyColumn = errors.New("tensor: no such key column")

// Densify moves one column of a TensorMap's keys into a wider properties
// axis on each remaining block: a structural reshape-with-scatter, not an
// arithmetic operation, whose correctness depends only on the Labels
// being insertion-ordered.
//
// column is the name of the key column to move. Blocks that agree on
// every other key column are merged into one output block; the moved
// column's distinct values become a new first (slowest-varying) column of
// the properties Labels, in first-occurrence order among the input blocks.
func Densify(tm *TensorMap, column string) (*TensorMap, error) {
	keyNames := tm.keys.Names()
	colIdx := -1
	for i, n := range keyNames {
		if n == column {
			colIdx = i

			break
		}
	}
	if colIdx < 0 {
		return nil, ErrNoSuchKeyColumn
	}

	remainingNames := make([]string, 0, len(keyNames)-1)
	for i, n := range keyNames {
		if i != colIdx {
			remainingNames = append(remainingNames, n)
		}
	}

	// One group per distinct "remaining" key, in first-occurrence order;
	// each group lists the source block indices (and their moved-column
	// value) that will be scattered into its wider properties axis.
	type group struct {
		remainingKey []int64
		sourceBlocks []int   // index into tm.blocks
		movedValues  []int64 // movedValues[k] is the moved-column value of sourceBlocks[k]
	}
	var groups []*group
	groupOf := make(map[string]int)

	tm.keys.Rows(func(blockIdx int, row []int64) {
		remaining := make([]int64, 0, len(row)-1)
		for i, v := range row {
			if i != colIdx {
				remaining = append(remaining, v)
			}
		}
		moved := row[colIdx]

		key := encodeInts(remaining)
		gi, ok := groupOf[key]
		if !ok {
			groups = append(groups, &group{remainingKey: remaining})
			gi = len(groups) - 1
			groupOf[key] = gi
		}
		g := groups[gi]
		g.sourceBlocks = append(g.sourceBlocks, blockIdx)
		g.movedValues = append(g.movedValues, moved)
	})

	newKeysBuilder := labels.NewBuilder(remainingNames...)
	outBlocks := make([]*Block, 0, len(groups))

	for _, g := range groups {
		if err := newKeysBuilder.Add(g.remainingKey...); err != nil {
			return nil, err
		}

		first, err := tm.BlockByID(g.sourceBlocks[0])
		if err != nil {
			return nil, err
		}

		propBuilder := labels.NewBuilder(append([]string{column}, first.Properties.Names()...)...)
		propsPerSlot := first.Properties.Count()

		for slot, srcIdx := range g.sourceBlocks {
			srcBlock, err := tm.BlockByID(srcIdx)
			if err != nil {
				return nil, err
			}
			moved := g.movedValues[slot]
			var addErr error
			srcBlock.Properties.Rows(func(_ int, propRow []int64) {
				if addErr != nil {
					return
				}
				addErr = propBuilder.Add(append([]int64{moved}, propRow...)...)
			})
			if addErr != nil {
				return nil, addErr
			}
		}

		newProperties := propBuilder.Finish()
		out, err := NewBlock(first.Samples, first.Components, newProperties)
		if err != nil {
			return nil, err
		}

		for slot, srcIdx := range g.sourceBlocks {
			srcBlock, err := tm.BlockByID(srcIdx)
			if err != nil {
				return nil, err
			}
			if err := scatterCopy(out, srcBlock, slot, propsPerSlot); err != nil {
				return nil, err
			}
		}

		outBlocks = append(outBlocks, out)
	}

	newKeys := newKeysBuilder.Finish()

	return NewTensorMap(newKeys, outBlocks)
}

// scatterCopy copies every (sample, components..., property) entry of src
// into dst at the property offset for densified slot `slot` (slot index
// among the source blocks for this group, each contributing propsPerSlot
// consecutive destination properties).
func scatterCopy(dst, src *Block, slot, propsPerSlot int) error {
	shape := src.Values.Shape()
	total := 1
	for _, d := range shape {
		total *= d
	}
	idx := make([]int, len(shape))
	for flat := 0; flat < total; flat++ {
		decode(flat, shape, idx)
		v, err := src.Values.At(idx...)
		if err != nil {
			return err
		}
		dstIdx := append([]int(nil), idx...)
		dstIdx[len(dstIdx)-1] += slot * propsPerSlot
		if err := dst.Values.Set(v, dstIdx...); err != nil {
			return err
		}
	}

	return nil
}

func decode(flat int, shape []int, out []int) {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		if shape[axis] == 0 {
			out[axis] = 0

			continue
		}
		out[axis] = flat % shape[axis]
		flat /= shape[axis]
	}
}

func encodeInts(row []int64) string {
	buf := make([]byte, 0, len(row)*8)
	for _, v := range row {
		buf = appendEncoded(buf, v)
		buf = append(buf, ',')
	}

	return string(buf)
}

func appendEncoded(buf []byte, v int64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
