package tensor_test

import (
	"testing"

	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/tensor"
	"github.com/stretchr/testify/require"
)

func blockWithValue(t *testing.T, v float64) *tensor.Block {
	t.Helper()

	samplesB := labels.NewBuilder("structure")
	require.NoError(t, samplesB.Add(0))
	block, err := tensor.NewBlock(samplesB.Finish(), nil, labels.Single("p", 0))
	require.NoError(t, err)
	require.NoError(t, block.Values.Set(v, 0, 0))

	return block
}

func TestDensify_MergesOnMovedColumn(t *testing.T) {
	t.Parallel()

	keysB := labels.NewBuilder("center_species", "neighbor_species")
	require.NoError(t, keysB.Add(1, 6))
	require.NoError(t, keysB.Add(1, 1))
	keys := keysB.Finish()

	tm, err := tensor.NewTensorMap(keys, []*tensor.Block{
		blockWithValue(t, 11),
		blockWithValue(t, 22),
	})
	require.NoError(t, err)

	dense, err := tensor.Densify(tm, "neighbor_species")
	require.NoError(t, err)

	require.Equal(t, 1, dense.NumBlocks())
	idx, ok := dense.Position(1)
	require.True(t, ok)

	block, err := dense.BlockByID(idx)
	require.NoError(t, err)
	require.Equal(t, 2, block.Properties.Count())

	v0, err := block.Values.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 11.0, v0)

	v1, err := block.Values.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 22.0, v1)
}

func TestDensify_UnknownColumn(t *testing.T) {
	t.Parallel()

	keysB := labels.NewBuilder("a")
	require.NoError(t, keysB.Add(1))
	keys := keysB.Finish()

	tm, err := tensor.NewTensorMap(keys, []*tensor.Block{blockWithValue(t, 1)})
	require.NoError(t, err)

	_, err = tensor.Densify(tm, "nope")
	require.ErrorIs(t, err, tensor.ErrNoSuchKeyColumn)
}
