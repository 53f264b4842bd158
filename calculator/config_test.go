package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomistics/rascaline/calculator"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := calculator.ParseConfig([]byte("cutoff: 3.5\nfull_neighbor_list: true\n"))
	require.NoError(t, err)
	require.Equal(t, 3.5, cfg.Cutoff)
	require.True(t, cfg.FullNeighborList)
}

func TestParseConfig_MissingCutoffIsInvalid(t *testing.T) {
	t.Parallel()

	_, err := calculator.ParseConfig([]byte("full_neighbor_list: false\n"))
	require.ErrorIs(t, err, calculator.ErrInvalidParameter)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, calculator.Validate(calculator.Config{Cutoff: 1.0}))
	require.ErrorIs(t, calculator.Validate(calculator.Config{Cutoff: 0}), calculator.ErrInvalidParameter)
	require.ErrorIs(t, calculator.Validate(calculator.Config{Cutoff: -5}), calculator.ErrInvalidParameter)
}
