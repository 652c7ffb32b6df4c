package simio

import (
	"strconv"
	"strings"
)

// splitToken parses one "index:value" token. ok is false for anything
// malformed: missing colon, non-integer index, negative index, or a
// non-numeric value.
func splitToken(token string) (index int, value float64, ok bool) {
	head, tail, found := strings.Cut(token, ":")
	if !found {
		return 0, 0, false
	}
	index, err := strconv.Atoi(head)
	if err != nil || index < 0 {
		return 0, 0, false
	}
	value, err = strconv.ParseFloat(tail, 64)
	if err != nil {
		return 0, 0, false
	}
	return index, value, true
}

// ParseSparse parses an input-spec line into the count-prefixed sparse
// layout the driver passes to Model.SetInputs: indices is
// [count, i1, i2, ...] and values holds one value per listed index.
// Malformed tokens are skipped. An empty or all-malformed line yields a
// zero count and an empty value slice.
func ParseSparse(spec string) (indices []int32, values []float64) {
	indices = []int32{0}
	for _, token := range strings.Fields(spec) {
		index, value, ok := splitToken(token)
		if !ok {
			continue
		}
		indices = append(indices, int32(index))
		values = append(values, value)
	}
	indices[0] = int32(len(values))
	return indices, values
}

// ParseDense parses an input-spec line into a dense buffer of numInputs
// values in declaration order. Unmentioned inputs stay zero; indices at
// or beyond numInputs and malformed tokens are skipped.
func ParseDense(spec string, numInputs int) []float64 {
	values := make([]float64, numInputs)
	for _, token := range strings.Fields(spec) {
		index, value, ok := splitToken(token)
		if !ok || index >= numInputs {
			continue
		}
		values[index] = value
	}
	return values
}
