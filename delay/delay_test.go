package delay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdsim/core"
	"github.com/katalvlaran/sdsim/delay"
)

func newRunEnv() *core.Env {
	env := core.NewEnv()
	env.InitialTime = 0
	env.FinalTime = 20
	env.TimeStep = 1
	return env
}

// TestFixedDelay_WarmupThenLag drives a 3-step delay with the step index
// as input: the initial value holds through the warmup, then every output
// reproduces an earlier input. The level semantics read one cell ahead of
// the write index, so the visible lag is n−1 evaluations.
func TestFixedDelay_WarmupThenLag(t *testing.T) {
	env := newRunEnv()
	fd := delay.NewFixedDelay(nil, env, 3, -1)

	var outputs []float64
	for step := 0; step <= 10; step++ {
		env.Time = float64(step)
		outputs = append(outputs, fd.Apply(env, float64(step)))
	}

	// Warmup: time < (n-1)*TimeStep - eps, i.e. steps 0 and 1.
	assert.Equal(t, -1.0, outputs[0], "initial value during warmup")
	assert.Equal(t, -1.0, outputs[1], "initial value during warmup")
	// From step 2 on, the output replays the input stream from the start.
	for step := 2; step <= 10; step++ {
		assert.Equal(t, float64(step-2), outputs[step], "lagged input at step %d", step)
	}
}

// TestFixedDelay_ZeroDelayPassesThrough covers a delay shorter than one
// time step.
func TestFixedDelay_ZeroDelayPassesThrough(t *testing.T) {
	env := newRunEnv()
	fd := delay.NewFixedDelay(nil, env, 0, 99)
	assert.Equal(t, 42.0, fd.Apply(env, 42), "zero-length buffer echoes the input")
}

// TestFixedDelay_ReuseAndReallocate exercises the cross-run state
// contract: same delay time reuses the buffer, a changed one reallocates.
func TestFixedDelay_ReuseAndReallocate(t *testing.T) {
	env := newRunEnv()
	first := delay.NewFixedDelay(nil, env, 4, 0)
	second := delay.NewFixedDelay(first, env, 4, 5)
	require.Same(t, first, second, "the state object is reused across runs")

	// A new run restarts the warmup with the re-latched initial value.
	env.Time = 0
	assert.Equal(t, 5.0, second.Apply(env, 7), "re-latched initial value after reinit")

	third := delay.NewFixedDelay(second, env, 8, 0)
	require.Same(t, second, third, "reallocation keeps the same state object")
	env.Time = 0
	assert.Equal(t, 0.0, third.Apply(env, 7), "longer delay restarts the warmup")
}

// TestDepreciation_DistributesEvenly feeds a single unit investment into a
// 4-step straight-line depreciation and expects 1/dtime per step until the
// buffer drains.
func TestDepreciation_DistributesEvenly(t *testing.T) {
	env := newRunEnv()
	dp := delay.NewDepreciation(nil, env, 4, 0)

	assert.InDelta(t, 0.25, dp.Apply(1), 1e-12, "first quarter matures immediately")
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.25, dp.Apply(0), 1e-12, "quarter %d of the single input", i+2)
	}
	assert.InDelta(t, 0.0, dp.Apply(0), 1e-12, "buffer drained after dtime steps")
}

// TestDepreciation_Overlap feeds two inputs one step apart and checks the
// overlapping contributions accumulate.
func TestDepreciation_Overlap(t *testing.T) {
	env := newRunEnv()
	dp := delay.NewDepreciation(nil, env, 2, 0)

	assert.InDelta(t, 0.5, dp.Apply(1), 1e-12, "first input, first half")
	assert.InDelta(t, 1.0, dp.Apply(1), 1e-12, "second half overlaps the second input's first half")
	assert.InDelta(t, 0.5, dp.Apply(0), 1e-12, "tail of the second input")
	assert.InDelta(t, 0.0, dp.Apply(0), 1e-12, "drained")
}

// TestDepreciation_ZeroTimePassesThrough covers dtime shorter than a step.
func TestDepreciation_ZeroTimePassesThrough(t *testing.T) {
	env := newRunEnv()
	dp := delay.NewDepreciation(nil, env, 0, 0)
	assert.Equal(t, 3.0, dp.Apply(3), "zero-length buffer echoes the input")
}

// TestDepreciation_ReinitZeroesBuffer makes sure a second run starts from
// a clean buffer even when the size is unchanged.
func TestDepreciation_ReinitZeroesBuffer(t *testing.T) {
	env := newRunEnv()
	dp := delay.NewDepreciation(nil, env, 2, 0)
	dp.Apply(10)

	dp = delay.NewDepreciation(dp, env, 2, 0)
	assert.InDelta(t, 0.0, dp.Apply(0), 1e-12, "no residue from the previous run")
}
