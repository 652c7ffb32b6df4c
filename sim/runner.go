package sim

import (
	"math"

	"github.com/katalvlaran/sdsim/core"
	"github.com/katalvlaran/sdsim/simio"
)

// savePointEps is the tolerance of the fmod save-point gate; it absorbs
// the drift of repeated time increments.
const savePointEps = 1e-6

// Buffers carries the caller-owned I/O of one run. Any field may be nil:
// nil Inputs skips input injection, nil Outputs selects string mode, nil
// OutputIndices emits the default output set, nil ConstantIndices skips
// constant overrides.
//
// InputIndices and ConstantIndices are count-prefixed descriptors.
// InputIndices is [count, varIdx...] with Inputs parallel to the listed
// variables; ConstantIndices is [count, (varIdx, subCount, subIdx...)*]
// with Constants holding one value per entry. OutputIndices uses the same
// per-entry shape as ConstantIndices to select emitted variables.
type Buffers struct {
	Inputs          []float64
	InputIndices    []int32
	Outputs         []float64
	OutputIndices   []int32
	Constants       []float64
	ConstantIndices []int32
}

// Runner drives one model through fixed-step runs. It owns the run's
// Outputs state and writes the clock; everything else belongs to the
// model or the caller. Not safe for concurrent use: one Runner, one Env,
// one model instance per worker.
type Runner struct {
	env    *core.Env
	model  Model
	out    Outputs
	primed bool
}

// NewRunner binds a model to its run environment.
func NewRunner(env *core.Env, model Model) *Runner {
	return &Runner{env: env, model: model}
}

// Env exposes the run environment, mainly to drivers and tests.
func (r *Runner) Env() *core.Env { return r.env }

// primeControlParams makes the control parameters answerable before any
// run. Models may define INITIAL TIME, FINAL TIME or SAVEPER in terms of
// values known only after initialization and one auxiliary pass, so the
// primer performs those steps once. Idempotent; a completed run counts
// as priming. Limitation: the primer cannot observe runtime-provided
// inputs, so control parameters derived from inputs read their defaults.
func (r *Runner) primeControlParams() {
	if r.primed {
		return
	}
	r.model.InitConstants()
	r.model.InitLevels()
	r.env.Time = r.env.InitialTime
	r.model.EvalAux()
	r.primed = true
}

// InitialTime returns the constant or computed value of INITIAL TIME.
func (r *Runner) InitialTime() float64 {
	r.primeControlParams()
	return r.env.InitialTime
}

// FinalTime returns the constant or computed value of FINAL TIME.
func (r *Runner) FinalTime() float64 {
	r.primeControlParams()
	return r.env.FinalTime
}

// Saveper returns the constant or computed value of SAVEPER.
func (r *Runner) Saveper() float64 {
	r.primeControlParams()
	return r.env.Saveper
}

// Run performs a complete run with inputs given in the "i1:v1 i2:v2"
// string format and returns the outputs as tab-separated text. It may be
// called repeatedly; call Finish after the last run.
func (r *Runner) Run(inputs string) (string, error) {
	r.out = Outputs{}
	r.model.InitConstants()
	if indices, values := simio.ParseSparse(inputs); len(values) > 0 {
		r.model.SetInputs(values, indices)
	}
	r.model.InitLevels()
	if err := r.run(nil); err != nil {
		return "", err
	}
	return r.out.String(), nil
}

// RunWithBuffers performs a complete run against caller-owned buffers:
// constant overrides first, then inputs, then the run itself with outputs
// written in column-major rows of numSavePoints values per variable.
func (r *Runner) RunWithBuffers(b Buffers) error {
	r.out = Outputs{buffer: b.Outputs}
	r.model.InitConstants()
	if b.ConstantIndices != nil {
		applyConstants(r.model, b.Constants, b.ConstantIndices)
	}
	if b.Inputs != nil || b.InputIndices != nil {
		r.model.SetInputs(b.Inputs, b.InputIndices)
	}
	r.model.InitLevels()
	return r.run(b.OutputIndices)
}

// applyConstants walks the count-prefixed override descriptor and applies
// one value per entry.
func applyConstants(m Model, values []float64, indices []int32) {
	offset := 0
	count := int(indices[offset])
	offset++
	for i := 0; i < count; i++ {
		varIndex := indices[offset]
		offset++
		subCount := int(indices[offset])
		offset++
		var subs []int32
		if subCount > 0 {
			subs = indices[offset : offset+subCount]
		}
		offset += subCount
		m.SetConstant(varIndex, subs, values[i])
	}
}

// run is the fixed-step main loop. Within a step: auxiliaries, then
// save-point emission, then level propagation, then the clock. That
// ordering is the semantics; do not reorder.
func (r *Runner) run(outputIndices []int32) error {
	if err := r.env.Validate(); err != nil {
		return err
	}

	// Restart fresh output for all steps in this run.
	r.out.savePointIndex = 0
	r.out.numSavePoints = 0
	r.env.Time = r.env.InitialTime

	lastStep := r.env.Steps()
	step := 0
	for {
		r.model.EvalAux()
		if math.Mod(r.env.Time, r.env.Saveper) < savePointEps {
			// SAVEPER may have been an auxiliary until the first EvalAux,
			// so the save-point count is resolved here, not up front.
			if r.out.numSavePoints == 0 {
				r.out.numSavePoints = r.env.SavePoints()
			}
			r.out.varIndex = 0
			if outputIndices != nil {
				emitSelected(r.model, outputIndices, &r.out)
			} else {
				r.model.StoreOutputData(&r.out)
			}
			r.out.savePointIndex++
		}
		if step == lastStep {
			break
		}
		// Propagate levels for the next time step.
		r.model.EvalLevels()
		r.env.Time += r.env.TimeStep
		step++
	}
	r.primed = true
	return nil
}

// emitSelected walks the output descriptor and emits each selected
// variable for the current save point.
func emitSelected(m Model, indices []int32, out *Outputs) {
	offset := 0
	count := int(indices[offset])
	offset++
	for i := 0; i < count; i++ {
		varIndex := indices[offset]
		offset++
		subCount := int(indices[offset])
		offset++
		var subs []int32
		if subCount > 0 {
			subs = indices[offset : offset+subCount]
		}
		offset += subCount
		m.StoreOutput(varIndex, subs, out)
	}
}

// Finish releases the runtime-held output state. Subsequent runs are
// still valid; Finish exists for drivers that want the legacy lifecycle.
func (r *Runner) Finish() {
	r.out = Outputs{}
}
