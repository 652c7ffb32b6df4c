package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sdsim/core"
)

// TestCmp exercises the magnitude-scaled three-way comparison.
func TestCmp(t *testing.T) {
	assert.Equal(t, 0, core.Cmp(1.0, 1.0+1e-9, 1e-6), "tiny gap collapses to equal")
	assert.Equal(t, -1, core.Cmp(1.0, 2.0, 1e-6), "clear ordering below")
	assert.Equal(t, 1, core.Cmp(2.0, 1.0, 1e-6), "clear ordering above")
	// The tolerance scales with magnitude: 1e9 vs 1e9+1 is equal at 1e-6.
	assert.Equal(t, 0, core.Cmp(1e9, 1e9+1, 1e-6), "relative tolerance at large magnitude")
}

// TestEnv_Difference checks the absolute-near-zero / relative-otherwise rule.
func TestEnv_Difference(t *testing.T) {
	env := core.NewEnv()

	// Near zero: absolute difference.
	assert.InDelta(t, 5e-7, env.Difference(0.0, 5e-7), 1e-12, "absolute metric near zero")
	// Away from zero: relative difference with y as baseline.
	assert.InDelta(t, 0.5, env.Difference(1.0, 2.0), 1e-12, "|1 - 1/2| = 0.5")
	assert.InDelta(t, 1.0, env.Difference(4.0, 2.0), 1e-12, "|1 - 4/2| = 1.0")
}

// TestEnv_ApproxEqual covers both branches of the difference metric.
func TestEnv_ApproxEqual(t *testing.T) {
	env := core.NewEnv()

	assert.True(t, env.ApproxEqual(0.0, 1e-8), "values within epsilon of zero compare equal")
	assert.True(t, env.ApproxEqual(1000.0, 1000.0000001), "relative branch accepts tiny drift")
	assert.False(t, env.ApproxEqual(1000.0, 1001.0), "0.1% relative difference exceeds epsilon")
}

// TestEnv_ApproxZero checks the plain epsilon band around zero.
func TestEnv_ApproxZero(t *testing.T) {
	env := core.NewEnv()
	assert.True(t, env.ApproxZero(9.9e-7), "inside the band")
	assert.False(t, env.ApproxZero(1.1e-6), "outside the band")
}

// TestEnv_OrderingHelpers sanity-checks the tolerant ordering predicates.
func TestEnv_OrderingHelpers(t *testing.T) {
	env := core.NewEnv()
	assert.True(t, env.Le(1.0, 1.0+1e-9), "approximately equal satisfies ≤")
	assert.True(t, env.Ge(1.0+1e-9, 1.0), "approximately equal satisfies ≥")
	assert.True(t, env.Lt(1.0, 1.1), "strict ordering survives the tolerance")
	assert.False(t, env.Gt(1.0, 1.0+1e-9), "approximate equality defeats strict >")
}
