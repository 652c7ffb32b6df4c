// Package vensim implements the numeric primitives of the Vensim function
// library: the time-shaped signal generators (PULSE, PULSE TRAIN, RAMP,
// STEP), the guarded divisions (XIDZ, ZIDZ), the one-step Euler integrator
// (INTEG), conditional sampling, and the elementwise math wrappers that
// compiled model code calls.
//
// 🚀 Semantics in one paragraph
//
//	All functions take and return float64. Time-dependent primitives
//	receive the run environment (*core.Env) and read the current time and
//	TIME STEP from it; nothing here mutates the environment. Comparisons
//	against zero use the environment's epsilon tolerance so that
//	floating-point equality is never relied upon.
//
// ✨ Highlights
//
//   - Pulse fires strictly inside (start, start+width); a zero width means
//     one TIME STEP, so the pulse is exactly one step wide.
//   - Ramp holds its final value past the end time and degrades to an
//     unbounded ramp when start > end.
//   - Step switches at the half-step midpoint, matching the fixed-step
//     save-point semantics.
//   - XIDZ/ZIDZ substitute a fallback (or zero) when the divisor is within
//     epsilon of zero.
//
// See package lookup for table functions, package delay for DELAY FIXED and
// DEPRECIATE STRAIGHTLINE, and package alloc for the allocation family.
package vensim
