package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomistics/rascaline/calculator"
	"github.com/atomistics/rascaline/labels"
	"github.com/atomistics/rascaline/system"
)

func water(t *testing.T) *system.SimpleSystem {
	t.Helper()

	return system.NewSimpleSystem(
		[]system.SpeciesCode{-42, 1, 1},
		[]system.Vector3{
			{0, 0, 0},
			{0, 0.75545, 0.58895},
			{0, -0.75545, 0.58895},
		},
		system.Matrix3{},
	)
}

func TestCompute_HalfList_Water(t *testing.T) {
	t.Parallel()

	calc, err := calculator.NewCalculator(calculator.WithCutoff(2.0), calculator.WithFullNeighborList(false))
	require.NoError(t, err)

	result, err := calc.Compute([]system.System{water(t)}, calculator.Selection{})
	require.NoError(t, err)

	require.Equal(t, 2, result.Keys().Count())
	idxOH, ok := result.Keys().Position(int64(-42), int64(1))
	require.True(t, ok)
	idxHH, ok := result.Keys().Position(int64(1), int64(1))
	require.True(t, ok)

	blockOH, err := result.BlockByID(idxOH)
	require.NoError(t, err)
	require.Equal(t, 2, blockOH.Samples.Count())

	row0, ok := blockOH.Samples.Position(0, 0, 0, 1)
	require.True(t, ok)
	x, err := blockOH.Values.At(row0, 0, 0)
	require.NoError(t, err)
	y, err := blockOH.Values.At(row0, 1, 0)
	require.NoError(t, err)
	z, err := blockOH.Values.At(row0, 2, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, x, 1e-12)
	require.InDelta(t, 0.75545, y, 1e-12)
	require.InDelta(t, 0.58895, z, 1e-12)

	blockHH, err := result.BlockByID(idxHH)
	require.NoError(t, err)
	require.Equal(t, 1, blockHH.Samples.Count())
	rowHH, ok := blockHH.Samples.Position(0, 2, 1, 2)
	require.True(t, ok)
	yHH, err := blockHH.Values.At(rowHH, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, -1.5109, yHH, 1e-12)
}

func TestCompute_FullList_Water_Antisymmetry(t *testing.T) {
	t.Parallel()

	calc, err := calculator.NewCalculator(calculator.WithCutoff(2.0), calculator.WithFullNeighborList(true))
	require.NoError(t, err)

	result, err := calc.Compute([]system.System{water(t)}, calculator.Selection{})
	require.NoError(t, err)

	require.Equal(t, 3, result.Keys().Count())

	idxOH, ok := result.Keys().Position(int64(-42), int64(1))
	require.True(t, ok)
	idxHO, ok := result.Keys().Position(int64(1), int64(-42))
	require.True(t, ok)

	blockOH, err := result.BlockByID(idxOH)
	require.NoError(t, err)
	blockHO, err := result.BlockByID(idxHO)
	require.NoError(t, err)

	rowOH, ok := blockOH.Samples.Position(0, 0, 0, 1)
	require.True(t, ok)
	rowHO, ok := blockHO.Samples.Position(0, 0, 1, 0)
	require.True(t, ok)

	for d := 0; d < 3; d++ {
		vOH, err := blockOH.Values.At(rowOH, d, 0)
		require.NoError(t, err)
		vHO, err := blockHO.Values.At(rowHO, d, 0)
		require.NoError(t, err)
		require.InDelta(t, -vOH, vHO, 1e-12)
	}
}

func TestCompute_GradientCompleteness(t *testing.T) {
	t.Parallel()

	calc, err := calculator.NewCalculator(calculator.WithCutoff(2.0))
	require.NoError(t, err)

	result, err := calc.Compute([]system.System{water(t)}, calculator.Selection{})
	require.NoError(t, err)

	idxOH, ok := result.Keys().Position(int64(-42), int64(1))
	require.True(t, ok)
	block, err := result.BlockByID(idxOH)
	require.NoError(t, err)

	grad, err := block.Gradient("positions")
	require.NoError(t, err)

	// two samples (O-H1, O-H2), each contributing exactly two gradient rows.
	require.Equal(t, 4, grad.Samples.Count())

	grad.Samples.Rows(func(_ int, row []int64) {
		sampleIdx := int(row[0])
		atom := row[2]
		sampleRow, err := block.Samples.Row(sampleIdx)
		require.NoError(t, err)
		require.Contains(t, []int64{sampleRow[2], sampleRow[3]}, atom)
	})
}

func TestCompute_PartialSelection(t *testing.T) {
	t.Parallel()

	calc, err := calculator.NewCalculator(calculator.WithCutoff(2.0))
	require.NoError(t, err)

	full, err := calc.Compute([]system.System{water(t)}, calculator.Selection{})
	require.NoError(t, err)
	idxOH, ok := full.Keys().Position(int64(-42), int64(1))
	require.True(t, ok)
	fullBlock, err := full.BlockByID(idxOH)
	require.NoError(t, err)
	require.Equal(t, 2, fullBlock.Samples.Count())

	b := labels.NewBuilder("structure", "pair_id", "first_atom", "second_atom")
	require.NoError(t, b.Add(0, 0, 0, 1))
	selectedSamples := b.Finish()

	partial, err := calc.Compute([]system.System{water(t)}, calculator.Selection{Samples: selectedSamples})
	require.NoError(t, err)
	partialBlock, err := partial.BlockByID(idxOH)
	require.NoError(t, err)
	require.Equal(t, 1, partialBlock.Samples.Count())
	_, ok = partialBlock.Samples.Position(0, 0, 0, 1)
	require.True(t, ok)
}

func TestCompute_EmptyBlocksBelowBondDistance(t *testing.T) {
	t.Parallel()

	calc, err := calculator.NewCalculator(calculator.WithCutoff(0.1))
	require.NoError(t, err)

	result, err := calc.Compute([]system.System{water(t)}, calculator.Selection{})
	require.NoError(t, err)

	require.Equal(t, 0, result.Keys().Count())
	require.Equal(t, 0, result.NumBlocks())
}

func TestNewCalculator_InvalidCutoff(t *testing.T) {
	t.Parallel()

	_, err := calculator.NewCalculator(calculator.WithCutoff(0))
	require.ErrorIs(t, err, calculator.ErrInvalidParameter)

	_, err = calculator.NewCalculator(calculator.WithCutoff(-1))
	require.ErrorIs(t, err, calculator.ErrInvalidParameter)
}
