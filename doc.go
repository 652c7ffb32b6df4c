// Package sdsim is a runtime for compiled System Dynamics models: a
// fixed-step simulator that advances levels through discrete time steps
// while evaluating a dependency-ordered graph of auxiliary equations.
//
// 🚀 What is sdsim?
//
//	A small numerical virtual machine in pure Go. A code generator (or a
//	careful hand) turns a Vensim-style model into an implementation of
//	sim.Model; sdsim supplies everything that implementation calls:
//
//	  • Function library: PULSE, RAMP, STEP, XIDZ/ZIDZ, lookups with
//	    three interpolation modes, DELAY FIXED, DEPRECIATE STRAIGHTLINE,
//	    VECTOR SORT ORDER, GAME, GET DATA BETWEEN TIMES
//	  • Allocation engine: ALLOCATE AVAILABLE, FIND MARKET PRICE,
//	    DEMAND/SUPPLY AT PRICE over five priority-curve families
//	  • Driver: the fixed-step loop with save-point gating, sparse input
//	    injection and dense/sparse output capture
//
// ✨ Why sdsim?
//
//   - Explicit state      — one core.Env per run, no process globals
//   - Deterministic       — fixed-step, bounded searches, no clocks
//   - Never aborts        — errors degrade locally and report via glog
//   - Pure Go             — no cgo, no model-specific code in the runtime
//
// The packages, leaves first:
//
//	core/    — run environment, epsilon comparisons, NA sentinel
//	vensim/  — elementwise and time-shaped numeric primitives
//	lookup/  — piecewise-linear tables, inversion, data queries
//	delay/   — DELAY FIXED and DEPRECIATE STRAIGHTLINE ring buffers
//	vecop/   — vector sort-order permutations
//	alloc/   — CDF families and the x-axis allocation searches
//	sim/     — the Model contract and the Runner main loop
//	simio/   — input-spec parsing and tab-delimited output writing
//
// See examples/epidemic for a complete hand-compiled model and cmd/sdsim
// for the command-line driver around it.
package sdsim
