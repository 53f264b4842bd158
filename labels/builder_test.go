package labels_test

import (
	"testing"

	"github.com/atomistics/rascaline/labels"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AddAndFinish(t *testing.T) {
	t.Parallel()

	b := labels.NewBuilder("structure", "center")
	require.NoError(t, b.Add(0, 1))
	require.NoError(t, b.Add(0, 2))
	require.Equal(t, 2, b.Count())

	l := b.Finish()
	require.Equal(t, 2, l.Count())
	require.Equal(t, []string{"structure", "center"}, l.Names())

	row, err := l.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2}, row)
}

func TestBuilder_DuplicateRowRejected(t *testing.T) {
	t.Parallel()

	b := labels.NewBuilder("a")
	require.NoError(t, b.Add(1))
	err := b.Add(1)
	require.ErrorIs(t, err, labels.ErrDuplicateRow)
	require.Equal(t, 1, b.Count()) // unchanged
}

func TestBuilder_ColumnCountMismatch(t *testing.T) {
	t.Parallel()

	b := labels.NewBuilder("a", "b")
	err := b.Add(1)
	require.ErrorIs(t, err, labels.ErrColumnCount)
}

func TestBuilder_InsertionOrderPreserved(t *testing.T) {
	t.Parallel()

	b := labels.NewBuilder("x")
	for _, v := range []int64{5, 1, 3, 2} {
		require.NoError(t, b.Add(v))
	}
	l := b.Finish()
	for i, want := range []int64{5, 1, 3, 2} {
		row, err := l.Row(i)
		require.NoError(t, err)
		require.Equal(t, want, row[0])
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	l := labels.Empty("structure", "pair_id", "first_atom", "second_atom")
	require.Equal(t, 0, l.Count())
	require.Equal(t, 4, l.NumColumns())
}
