package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sdsim/core"
	"github.com/katalvlaran/sdsim/lookup"
)

// series is a yearly data series: (2000,10) (2001,20) (2002,40) (2003,80).
func series() *lookup.Table {
	return lookup.New([]float64{2000, 10, 2001, 20, 2002, 40, 2003, 80})
}

// TestGetDataBetweenTimes_Forward floors the input and steps to the next y.
func TestGetDataBetweenTimes_Forward(t *testing.T) {
	tbl := series()

	assert.Equal(t, 10.0, tbl.GetDataBetweenTimes(2000.7, lookup.Forward), "2000.7 floors to 2000 and answers its y")
	assert.Equal(t, 10.0, tbl.GetDataBetweenTimes(2000.0, lookup.Forward), "exact year answers its own y")
	assert.Equal(t, 40.0, tbl.GetDataBetweenTimes(2002.0, lookup.Forward), "exact later year")
	assert.Equal(t, 80.0, tbl.GetDataBetweenTimes(2010.0, lookup.Forward), "beyond the series clamps to the last y")
}

// TestGetDataBetweenTimes_Backward floors the input and holds the previous y.
func TestGetDataBetweenTimes_Backward(t *testing.T) {
	tbl := series()

	assert.Equal(t, 10.0, tbl.GetDataBetweenTimes(2000.9, lookup.Backward), "2000.9 floors to 2000 and holds the y before x=2001")
	assert.Equal(t, 20.0, tbl.GetDataBetweenTimes(2002.0, lookup.Backward), "holds the y of the preceding pair")
	assert.Equal(t, 40.0, tbl.GetDataBetweenTimes(2010.0, lookup.Backward), "past the series answers the next-to-last y")
}

// TestGetDataBetweenTimes_BackwardSinglePair covers the one-pair fallback.
func TestGetDataBetweenTimes_BackwardSinglePair(t *testing.T) {
	tbl := lookup.New([]float64{2000, 10})
	assert.Equal(t, 10.0, tbl.GetDataBetweenTimes(2005, lookup.Backward), "single-pair table answers its only y")
}

// TestGetDataBetweenTimes_Interpolate interpolates from the second pair on.
func TestGetDataBetweenTimes_Interpolate(t *testing.T) {
	tbl := series()

	assert.Equal(t, 10.0, tbl.GetDataBetweenTimes(2000, lookup.Interpolate), "start of the series")
	assert.Equal(t, 40.0, tbl.GetDataBetweenTimes(2002, lookup.Interpolate), "whole-number input hits exactly")
	assert.Equal(t, 80.0, tbl.GetDataBetweenTimes(2010, lookup.Interpolate), "beyond the series clamps")
	// A fractional input warns once and still answers a linear best effort.
	assert.InDelta(t, 30.0, tbl.GetDataBetweenTimes(2001.5, lookup.Interpolate), 1e-12, "best-effort interpolation on fractional input")
}

// TestGetDataBetweenTimes_Empty answers the NA sentinel.
func TestGetDataBetweenTimes_Empty(t *testing.T) {
	assert.Equal(t, core.NA, lookup.New(nil).GetDataBetweenTimes(2000, lookup.Forward), "empty series answers NA")
}

// TestGame returns the default before the series starts and a backward
// lookup afterwards.
func TestGame(t *testing.T) {
	tbl := series()
	env := core.NewEnv()

	env.Time = 1990
	assert.Equal(t, -1.0, tbl.Game(env, -1), "before the first data point the default wins")

	env.Time = 2001.5
	assert.Equal(t, 20.0, tbl.Game(env, -1), "inside the series GAME holds backward")

	env.Time = 2003
	assert.Equal(t, 80.0, tbl.Game(env, -1), "exact hit answers its own y")

	var missing *lookup.Table
	assert.Equal(t, -1.0, missing.Game(env, -1), "missing table answers the default")
}
