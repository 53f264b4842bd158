package keys_test

import (
	"testing"

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
