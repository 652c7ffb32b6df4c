// Package sim is the simulation driver: the fixed-step loop that advances
// a compiled System Dynamics model from INITIAL TIME to FINAL TIME,
// emitting outputs at every SAVEPER boundary.
//
// 🚀 Division of labor
//
//	The generated model code knows the variables; the driver knows the
//	clock. A model implements the Model interface (initialization,
//	auxiliary and level evaluation, input injection, output emission) and
//	a Runner owns the run: it seeds the clock, walks the steps, gates the
//	save points and lays out the output buffer.
//
// ✨ Step ordering — the contract behind the semantics
//
//	Within one step: auxiliaries are evaluated first, outputs are emitted
//	at save points second, levels are propagated third, and time advances
//	last. This ordering is what makes the fixed-step semi-implicit
//	integration correct; the Runner never reorders it.
//
// Outputs land in a caller-owned column-major buffer (one row of
// numSavePoints values per variable) or, in the legacy string mode, in a
// tab-delimited text block. Inputs and constant overrides arrive dense or
// sparse; sparse index descriptors are count-prefixed.
//
// SAVEPER may be an auxiliary computed by the model's first evaluation
// pass, so the save-point count is resolved lazily at the first
// emission. For the same reason the control-parameter accessors run a
// one-shot primer (init + one auxiliary pass) before answering. The
// primer cannot observe runtime-provided inputs; control parameters
// derived from inputs read their defaults.
//
// A Runner is single-threaded and runs to completion; callers wanting
// parallel evaluation create one Runner (and one core.Env, and one model
// instance) per worker.
package sim
