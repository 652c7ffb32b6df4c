package delay

import (
	"math"

	"github.com/katalvlaran/sdsim/core"
)

// FixedDelay is the state of a DELAY FIXED call site: a ring buffer sized
// to the delay time in steps, the write index, and the initial value
// reported while the buffer warms up.
type FixedDelay struct {
	data    []float64
	n       int
	index   int
	initial float64
}

// NewFixedDelay latches the delay time and initial value at init time and
// returns a ready state. Pass the state from a previous run to reuse its
// buffer; it is reallocated only when the quantized length changed. The
// delay time is quantized to ceil(delayTime / TIME STEP) steps.
func NewFixedDelay(prev *FixedDelay, env *core.Env, delayTime, initialValue float64) *FixedDelay {
	n := int(math.Ceil(delayTime / env.TimeStep))
	d := prev
	if d == nil {
		d = &FixedDelay{data: make([]float64, n)}
	} else if d.n != n {
		d.data = make([]float64, n)
	}
	// Reset state at the start of each run.
	d.n = n
	d.index = 0
	d.initial = initialValue
	return d
}

// Apply records the input for this step and returns the delayed output:
// the initial value until the warmup window ends, then the input passed
// n−1 calls earlier (the oldest cell of the ring). A zero-length delay
// passes the input through.
func (d *FixedDelay) Apply(env *core.Env, input float64) float64 {
	if d.n == 0 {
		return input
	}
	d.data[d.index] = input
	// DELAY FIXED behaves as a level: read one step ahead in the ring.
	d.index = (d.index + 1) % d.n
	// Pull from the ring only once the next step reaches the delay time.
	if env.Time < env.InitialTime+float64(d.n-1)*env.TimeStep-1e-6 {
		return d.initial
	}
	return d.data[d.index]
}
