package samples_test

import (
	"testing"

	"github.com/atomistics/rascaline/samples"
	"github.com/atomistics/rascaline/system"
	"github.com/stretchr/testify/require"
)

func water(t *testing.T) *system.SimpleSystem {
	t.Helper()

	s := system.NewSimpleSystem(
		[]system.SpeciesCode{-42, 1, 1},
		[]system.Vector3{
			{0, 0, 0},
			{0, 0.75545, 0.58895},
			{0, -0.75545, 0.58895},
		},
		system.Matrix3{},
	)
	require.NoError(t, s.ComputeNeighbors(2.0))

	return s
}

func diatomicCH(t *testing.T) *system.SimpleSystem {
	t.Helper()

	s := system.NewSimpleSystem(
		[]system.SpeciesCode{6, 1},
		[]system.Vector3{{0, 0, 0}, {0, 0, 1.09}},
		system.Matrix3{},
	)
	require.NoError(t, s.ComputeNeighbors(2.0))

	return s
}

func TestAtomCenteredSamples_Water(t *testing.T) {
	t.Parallel()

	l, err := samples.AtomCenteredSamples([]system.System{water(t)}, false)
	require.NoError(t, err)

	// (O,H1) pair contributes rows for center O and center H1; (O,H2) for
	// O and H2; (H1,H2) for H1 and H2. O appears as center twice with the
	// same (species_center, species_neighbor) tuple (-42,1), deduplicated.
	require.Equal(t, 5, l.Count())

	for _, want := range [][]int64{
		{0, 0, -42, 1},
		{0, 1, 1, -42},
		{0, 1, 1, 1},
		{0, 2, 1, -42},
		{0, 2, 1, 1},
	} {
		_, ok := l.Position(want...)
		require.True(t, ok, "missing row %v", want)
	}
}

func TestAtomCenteredSamples_SelfContribution(t *testing.T) {
	t.Parallel()

	l, err := samples.AtomCenteredSamples([]system.System{diatomicCH(t)}, true)
	require.NoError(t, err)

	for _, want := range [][]int64{
		{0, 0, 6, 1},
		{0, 1, 1, 6},
		{0, 0, 6, 6},
		{0, 1, 1, 1},
	} {
		_, ok := l.Position(want...)
		require.True(t, ok, "missing row %v", want)
	}
	require.Equal(t, 4, l.Count())
}

func TestAtomCenteredSamples_LexicographicOrder(t *testing.T) {
	t.Parallel()

	l, err := samples.AtomCenteredSamples([]system.System{water(t)}, false)
	require.NoError(t, err)

	var prev []int64
	l.Rows(func(i int, row []int64) {
		if prev != nil {
			require.LessOrEqual(t, compareForTest(prev, row), 0)
		}
		prev = append([]int64(nil), row...)
	})
}

func compareForTest(a, b []int64) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

func TestAtomCenteredGradientSamples_Water(t *testing.T) {
	t.Parallel()

	sys := water(t)
	sampleRows, err := samples.AtomCenteredSamples([]system.System{sys}, false)
	require.NoError(t, err)

	gradRows, err := samples.AtomCenteredGradientSamples([]system.System{sys}, sampleRows)
	require.NoError(t, err)
	require.Positive(t, gradRows.Count())

	// every sample index referenced in gradient rows must be valid
	gradRows.Rows(func(_ int, row []int64) {
		require.GreaterOrEqual(t, row[0], int64(0))
		require.Less(t, row[0], int64(sampleRows.Count()))
	})
}
