// Package vecop implements the vector operations of the function library.
// Today that is VECTOR SORT ORDER, which reports the permutation that
// would sort a vector rather than the sorted values themselves.
package vecop

import (
	"errors"
	"sort"

	"github.com/golang/glog"
)

// MaxSortElements bounds the size of a sortable vector.
const MaxSortElements = 16

// ErrTooManyElements indicates the vector exceeds MaxSortElements.
var ErrTooManyElements = errors.New("vecop: vector exceeds the sort capacity")

// SortOrder returns the index permutation that orders v by value:
// ascending when direction > 0, descending otherwise. Equal values keep
// their original relative order. The indices are returned as float64 so
// model code can feed them straight into subscript arithmetic. Vectors
// longer than MaxSortElements are reported and answered with a nil
// permutation.
func SortOrder(v []float64, direction float64) ([]float64, error) {
	if len(v) > MaxSortElements {
		glog.Errorf("VECTOR SORT ORDER: %d elements exceed the internal maximum of %d", len(v), MaxSortElements)
		return nil, ErrTooManyElements
	}

	order := make([]int, len(v))
	for i := range order {
		order[i] = i
	}
	asc := direction > 0.0
	sort.SliceStable(order, func(a, b int) bool {
		if asc {
			return v[order[a]] < v[order[b]]
		}
		return v[order[a]] > v[order[b]]
	})

	result := make([]float64, len(v))
	for i, idx := range order {
		result[i] = float64(idx)
	}
	return result, nil
}
