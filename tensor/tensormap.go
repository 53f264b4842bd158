package tensor

import (
	"errors"

	"github.com/atomistics/rascaline/labels"
)

// Sentinel errors for TensorMap construction and access.
var (
	// ErrKeyBlockCountMismatch indicates the number of blocks passed to
	// NewTensorMap does not equal keys.Count().
	ErrKeyBlockCountMismatch = errors.New("tensor: block count does not match key count")

	// ErrBlockIndexOutOfRange indicates BlockByID/BlockMutByID was called
	// with an out-of-bounds index.
	ErrBlockIndexOutOfRange = errors.New("tensor: block index out of range")
)

// TensorMap is a Labels-keyed sequence of Blocks: |blocks| == keys.Count(),
// with a stable bijection between key row and block index. A TensorMap
// owns all of its Blocks; each Block owns its own tensors and Labels.
type TensorMap struct {
	keys   *labels.Labels
	blocks []*Block
}

// NewTensorMap pairs keys with blocks positionally: blocks[i] is keyed by
// keys row i. Returns ErrKeyBlockCountMismatch if the lengths disagree.
func NewTensorMap(keys *labels.Labels, blocks []*Block) (*TensorMap, error) {
	if keys.Count() != len(blocks) {
		return nil, ErrKeyBlockCountMismatch
	}

	return &TensorMap{keys: keys, blocks: append([]*Block(nil), blocks...)}, nil
}

// Keys returns the outer Labels of the TensorMap.
func (t *TensorMap) Keys() *labels.Labels {
	return t.keys
}

// NumBlocks returns the number of blocks (equivalently, key rows).
func (t *TensorMap) NumBlocks() int {
	return len(t.blocks)
}

// BlockByID returns the i-th block for reading.
func (t *TensorMap) BlockByID(i int) (*Block, error) {
	if i < 0 || i >= len(t.blocks) {
		return nil, ErrBlockIndexOutOfRange
	}

	return t.blocks[i], nil
}

// BlockMutByID returns the i-th block for mutation. Two handles returned
// for different indices are always safe to use concurrently: there is no
// lock shared across blocks, matching the spec's "no global lock"
// requirement, because each Block's storage is private to it.
func (t *TensorMap) BlockMutByID(i int) (*Block, error) {
	return t.BlockByID(i)
}

// Position returns the block index whose key row equals key, if any.
func (t *TensorMap) Position(key ...int64) (int, bool) {
	return t.keys.Position(key...)
}
