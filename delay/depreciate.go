package delay

import (
	"math"

	"github.com/katalvlaran/sdsim/core"
)

// Depreciation is the state of a DEPRECIATE STRAIGHTLINE call site: a ring
// buffer covering the depreciation time in steps, with each input spread
// uniformly across it.
type Depreciation struct {
	data    []float64
	n       int
	index   int
	dtime   float64
	initial float64
}

// NewDepreciation latches the depreciation time and initial value at init
// time and returns a ready state. Pass the state from a previous run to
// reuse its buffer; it is reallocated only when the quantized length
// changed, and its contents are zeroed either way.
func NewDepreciation(prev *Depreciation, env *core.Env, dtime, initialValue float64) *Depreciation {
	n := int(math.Ceil(dtime / env.TimeStep))
	d := prev
	if d == nil {
		d = &Depreciation{data: make([]float64, n)}
	} else if d.n != n {
		d.data = make([]float64, n)
	} else {
		for i := range d.data {
			d.data[i] = 0
		}
	}
	// Reset state at the start of each run.
	d.n = n
	d.index = 0
	d.dtime = dtime
	d.initial = initialValue
	return d
}

// Apply distributes input/dtime into every cell of the ring, returns the
// amount accumulated in the current cell, zeroes it, and advances. A
// zero-length buffer passes the input through.
func (d *Depreciation) Apply(input float64) float64 {
	if d.n == 0 {
		return input
	}
	distribution := input / d.dtime
	for i := 0; i < d.n; i++ {
		pos := (d.index + i) % d.n
		d.data[pos] += distribution
	}
	result := d.data[d.index]
	// Zero the matured cell and advance the ring index to the next step.
	d.data[d.index] = 0
	d.index = (d.index + 1) % d.n
	return result
}
