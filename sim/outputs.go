package sim

import (
	"fmt"
	"strings"
)

// Outputs collects the values emitted at save points. It runs in one of
// two modes: buffer mode writes into a caller-owned column-major slice
// (value of variable v at save point t lands at v*numSavePoints + t);
// string mode appends "%g"-formatted, tab-separated text, the legacy
// embedding format.
type Outputs struct {
	buffer []float64 // caller-owned; nil selects string mode
	text   strings.Builder

	numSavePoints  int // resolved lazily at the first save point
	savePointIndex int
	varIndex       int // reset before each save-point emission
}

// OutputVar stores one value for the current save point and advances the
// per-emission variable cursor.
func (o *Outputs) OutputVar(value float64) {
	if o.buffer != nil {
		o.buffer[o.varIndex*o.numSavePoints+o.savePointIndex] = value
		o.varIndex++
		return
	}
	fmt.Fprintf(&o.text, "%g\t", value)
}

// String returns the text accumulated in string mode.
func (o *Outputs) String() string { return o.text.String() }

// SavePoints returns the resolved save-point count, zero before the first
// emission.
func (o *Outputs) SavePoints() int { return o.numSavePoints }
