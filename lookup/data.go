package lookup

import (
	"math"
	"sync"

	"github.com/golang/glog"

	"github.com/katalvlaran/sdsim/core"
)

// gdbtWarn gates the one-shot fractional-input warning emitted by
// GetDataBetweenTimes in Interpolate mode.
var gdbtWarn sync.Once

// GetDataBetweenTimes answers a GET DATA BETWEEN TIMES query. Vensim's
// results for this function diverge from plain lookups, so it does not
// share the Lookup path:
//
//   - Forward floors the input to a whole number, then returns the y of
//     the first x ≥ input (the last y when none).
//   - Backward floors the input and returns the y preceding the first
//     x ≥ input, scanning from the second pair; when no pair qualifies it
//     answers the y of the next-to-last pair, or the first y for a
//     single-pair table.
//   - Interpolate matches Vensim only for whole-number inputs. A
//     fractional input triggers a single warning for the process, because
//     Vensim's own interpolated values are not reproducible in that case;
//     the query still answers a best-effort linear interpolation.
func (t *Table) GetDataBetweenTimes(input float64, mode Mode) float64 {
	if t == nil || t.Size() == 0 {
		return core.NA
	}

	data := t.active
	max := len(data)

	switch mode {
	case Forward:
		input = math.Floor(input)
		for xi := 0; xi < max; xi += 2 {
			if data[xi] >= input {
				return data[xi+1]
			}
		}
		return data[max-1]

	case Backward:
		input = math.Floor(input)
		for xi := 2; xi < max; xi += 2 {
			if data[xi] >= input {
				return data[xi-1]
			}
		}
		if max >= 4 {
			return data[max-3]
		}
		return data[1]

	default: // Interpolate
		if input-math.Floor(input) > 0 {
			gdbtWarn.Do(func() {
				glog.Warningf("GET DATA BETWEEN TIMES was called with an input value (%f) that has a fractional part; "+
					"in interpolate mode Vensim produces unexpected results for non-whole inputs, "+
					"so values may not match Vensim output", input)
			})
		}
		for xi := 2; xi < max; xi += 2 {
			x := data[xi]
			if x >= input {
				lastX := data[xi-2]
				lastY := data[xi-1]
				dx := x - lastX
				dy := data[xi+1] - lastY
				return lastY + (dy/dx)*(input-lastX)
			}
		}
		return data[max-1]
	}
}

// Game implements the GAME input overlay: the default value before the
// first data point (or when the table is empty), and a Backward-mode
// lookup at the current time otherwise.
func (t *Table) Game(env *core.Env, defaultValue float64) float64 {
	if t == nil || t.Size() == 0 {
		return defaultValue
	}
	if env.Time < t.active[0] {
		return defaultValue
	}
	return t.lookup(env.Time, false, Backward)
}
