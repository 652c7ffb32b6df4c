// Package delay implements the two ring-buffer primitives of the function
// library: DELAY FIXED and DEPRECIATE STRAIGHTLINE.
//
// Both quantize their time constant to n = ceil(duration / TIME STEP)
// buffer cells and are driven once per integration step. State objects are
// owned by the model's generated code and survive across runs: the
// constructors accept the previous state and reuse its buffer when the
// quantized length is unchanged, reallocating only when the duration (or
// the time step) changed between runs.
//
//   - FixedDelay echoes its input n−1 calls later (it reads the ring one
//     cell ahead of the write index); until the buffer has seen n−1 steps
//     it reports the latched initial value.
//   - Depreciation spreads each input uniformly over the next n steps
//     (input / duration per cell) and reports the accumulated amount that
//     matured this step.
//
// A zero-length buffer (duration shorter than one step) makes both
// primitives a pass-through.
package delay
