// Package lookup implements Vensim piecewise-linear lookup tables: ordered
// (x, y) pairs with monotonically non-decreasing x, queried in one of three
// modes, overridable at runtime, and invertible on demand.
//
// 🚀 Anatomy of a Table
//
//	  • original  — the data supplied at construction; immutable for the
//	                run. New copies it, NewRef borrows caller-owned data.
//	  • dynamic   — an internally managed buffer holding runtime overrides
//	                installed with Set; grown as needed and kept allocated
//	                when the original is restored.
//	  • active    — the view (original or dynamic) answering queries.
//	  • inverted  — a lazily built x/y-swapped copy backing Invert.
//	  • hit cache — the last input and matching index; scans resume there
//	                for monotonically non-decreasing inputs, which is the
//	                common access pattern inside a simulation run.
//
// ✨ Query modes
//
//   - Interpolate — linear interpolation between bracketing pairs.
//   - Forward     — the y of the first x ≥ input (step up-front).
//   - Backward    — the y of the pair before it (hold).
//
// Inputs below the first x clamp to the first y; inputs above the last x
// clamp to the last y. An empty or nil table returns the core.NA sentinel.
//
// GetDataBetweenTimes reproduces Vensim's GET DATA BETWEEN TIMES quirks,
// which differ from plain lookups: Forward and Backward floor the input to
// a whole number, and Interpolate emits a one-shot warning on fractional
// inputs because Vensim's own results are not reproducible there. Game
// implements the GAME input overlay on top of Backward mode.
package lookup
