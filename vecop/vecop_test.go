package vecop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdsim/vecop"
)

// TestSortOrder_Ascending returns the permutation, not the sorted values.
func TestSortOrder_Ascending(t *testing.T) {
	order, err := vecop.SortOrder([]float64{30, 10, 20}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0}, order, "indices of the values in ascending order")
}

// TestSortOrder_Descending flips the direction.
func TestSortOrder_Descending(t *testing.T) {
	order, err := vecop.SortOrder([]float64{30, 10, 20}, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 1}, order, "indices of the values in descending order")
}

// TestSortOrder_StableOnTies keeps the original relative order of equal
// values.
func TestSortOrder_StableOnTies(t *testing.T) {
	order, err := vecop.SortOrder([]float64{5, 1, 5, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 0, 2}, order, "ties preserve input order")
}

// TestSortOrder_CapacityExceeded reports and returns nil.
func TestSortOrder_CapacityExceeded(t *testing.T) {
	big := make([]float64, vecop.MaxSortElements+1)
	order, err := vecop.SortOrder(big, 1)
	assert.ErrorIs(t, err, vecop.ErrTooManyElements, "over-capacity vector must error")
	assert.Nil(t, order, "no permutation on error")
}

// TestSortOrder_Empty is a no-op permutation.
func TestSortOrder_Empty(t *testing.T) {
	order, err := vecop.SortOrder(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, order, "empty vector sorts to an empty permutation")
}
