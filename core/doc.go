// Package core holds the shared substrate of the sdsim runtime: the run
// environment with the simulation clock and control parameters, and the
// epsilon-tolerant floating-point comparison helpers used throughout the
// function library and the allocation engine.
//
// 🚀 What lives here?
//
//	  • Env        — the explicit run context: current time, INITIAL TIME,
//	                 FINAL TIME, TIME STEP, SAVEPER and the comparison
//	                 tolerance. Every time-dependent primitive receives an
//	                 *Env instead of reading process globals.
//	  • fcmp       — Knuth-style approximate comparison (TAOCP Vol 2,
//	                 §4.2.2) plus the absolute-or-relative Difference used
//	                 by the allocation engine's convergence tests.
//	  • NA         — the sentinel value returned by empty lookups.
//
// ✨ Why an explicit Env?
//
//   - Single-threaded runs make passing a context cheap.
//   - Independent runs only need independent Env values; the only shared
//     mutable state in the runtime is the process-wide one-shot warning
//     gate of lookup.GetDataBetweenTimes.
//   - Control parameters may be plain constants or computed by the model's
//     first auxiliary pass; Env does not care which.
//
// All other sdsim packages depend on core; core depends only on the
// standard library.
package core
