package keys_test

import (
	"testing"

	"github.com/atomistics/rascaline/keys"
	"github.com/atomistics/rascaline/system"
	"github.com/stretchr/testify/require"
)

func TestPairSpeciesKeys_HalfList_Water(t *testing.T) {
	t.Parallel()

	l, err := keys.PairSpeciesKeys([]system.System{water(t)}, false)
	require.NoError(t, err)

	// O-H (canon -42,1) and H-H (canon 1,1): two distinct keys.
	require.Equal(t, 2, l.Count())
	_, ok := l.Position(int64(-42), int64(1))
	require.True(t, ok)
	_, ok = l.Position(int64(1), int64(1))
	require.True(t, ok)
}

func TestPairSpeciesKeys_FullList_Water(t *testing.T) {
	t.Parallel()

	l, err := keys.PairSpeciesKeys([]system.System{water(t)}, true)
	require.NoError(t, err)

	// full list keeps both orientations of the heteronuclear pair, plus
	// the homonuclear (1,1) key which is its own reverse.
	require.Equal(t, 3, l.Count())
	for _, want := range [][2]int64{{-42, 1}, {1, -42}, {1, 1}} {
		_, ok := l.Position(want[0], want[1])
		require.True(t, ok, "missing key %v", want)
	}
}

func TestPairSpeciesKeys_Diatomic(t *testing.T) {
	t.Parallel()

	half, err := keys.PairSpeciesKeys([]system.System{diatomicCH(t)}, false)
	require.NoError(t, err)
	require.Equal(t, 1, half.Count())

	full, err := keys.PairSpeciesKeys([]system.System{diatomicCH(t)}, true)
	require.NoError(t, err)
	require.Equal(t, 2, full.Count())
}
