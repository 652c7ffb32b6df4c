package lookup

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sdsim/core"
)

// Table is a piecewise-linear lookup over (x, y) pairs stored as a
// flattened [x0, y0, x1, y1, ...] sequence with x monotonically
// non-decreasing. The zero value is not usable; construct with New or
// NewRef. All methods tolerate a nil receiver and answer core.NA (or the
// caller's default), matching the behavior of a missing table.
type Table struct {
	original []float64 // construction data; owned (New) or borrowed (NewRef)
	dynamic  []float64 // override buffer; grown on demand, never shrunk
	active   []float64 // current view: original or a prefix of dynamic
	inverted []float64 // lazy x/y-swapped copy of active, for Invert

	lastInput float64 // hit cache: most recent query input
	lastHit   int     // hit cache: element index of the most recent match
}

// New builds a Table from a flattened pair sequence, copying the data into
// an internally owned buffer. len(points) must be even.
func New(points []float64) *Table {
	own := make([]float64, len(points))
	copy(own, points)
	return newTable(own)
}

// NewRef builds a Table that borrows the given pair sequence without
// copying. The caller must keep the data immutable for the lifetime of the
// table; static model data is the intended use.
func NewRef(points []float64) *Table {
	return newTable(points)
}

func newTable(points []float64) *Table {
	return &Table{
		original:  points,
		active:    points,
		lastInput: math.MaxFloat64,
	}
}

// Size returns the number of active (x, y) pairs.
func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return len(t.active) / 2
}

// Set installs new active data for the table. A non-nil points slice is
// copied into the dynamic buffer (grown if needed) and becomes active; nil
// restores the original data. Either way the inverted cache is dropped and
// the hit cache is reset.
func (t *Table) Set(points []float64) {
	if t == nil {
		return
	}
	if points != nil {
		if len(points) > len(t.dynamic) {
			t.dynamic = make([]float64, len(points))
		}
		copy(t.dynamic, points)
		t.active = t.dynamic[:len(points)]
	} else {
		t.active = t.original
	}
	t.inverted = nil
	t.lastInput = math.MaxFloat64
	t.lastHit = 0
}

// Lookup answers a query against the active data in the given mode.
// Inputs outside the x range clamp to the first or last y; an empty table
// answers core.NA.
func (t *Table) Lookup(input float64, mode Mode) float64 {
	return t.lookup(input, false, mode)
}

// WithLookup is the WITH LOOKUP form: an interpolating query.
func WithLookup(x float64, t *Table) float64 {
	return t.Lookup(x, Interpolate)
}

// Invert answers an interpolating query against the x/y-swapped table,
// building the swapped copy on first use. The result is only meaningful
// when y is monotonic. Inverted queries bypass the hit cache, since
// alternating inverted and plain queries would poison it.
func (t *Table) Invert(y float64) float64 {
	if t == nil || t.Size() == 0 {
		return core.NA
	}
	if t.inverted == nil {
		t.inverted = make([]float64, len(t.active))
		for i := 0; i < len(t.active); i += 2 {
			t.inverted[i] = t.active[i+1]
			t.inverted[i+1] = t.active[i]
		}
	}
	return t.lookup(y, true, Interpolate)
}

// lookup scans the pair sequence for the first x ≥ input and resolves the
// result per the mode. The x values are assumed monotonically
// non-decreasing. The hit cache is consulted and updated only for
// non-inverted queries.
func (t *Table) lookup(input float64, useInverted bool, mode Mode) float64 {
	if t == nil || t.Size() == 0 {
		return core.NA
	}

	data := t.active
	if useInverted {
		data = t.inverted
	}
	max := len(data)

	useCache := !useInverted
	start := 0
	if useCache && input >= t.lastInput {
		start = t.lastHit
	}

	for xi := start; xi < max; xi += 2 {
		x := data[xi]
		if x >= input {
			// Went past the input, or hit it exactly.
			if useCache {
				t.lastInput = input
				t.lastHit = xi
			}
			if xi == 0 || x == input {
				// Below the first x, or an exact hit: no interpolation.
				return data[xi+1]
			}
			switch mode {
			case Forward:
				return data[xi+1]
			case Backward:
				return data[xi-1]
			default: // Interpolate
				lastX := data[xi-2]
				lastY := data[xi-1]
				dx := x - lastX
				dy := data[xi+1] - lastY
				return lastY + (dy/dx)*(input-lastX)
			}
		}
	}

	// The input is greater than every x: clamp to the high end.
	if useCache {
		t.lastInput = input
		t.lastHit = max
	}
	return data[max-1]
}

// String renders the active pairs for debugging.
func (t *Table) String() string {
	if t == nil {
		return "<nil lookup>"
	}
	var sb strings.Builder
	for i := 0; i < len(t.active); i += 2 {
		fmt.Fprintf(&sb, "(%g, %g)\n", t.active[i], t.active[i+1])
	}
	return sb.String()
}
