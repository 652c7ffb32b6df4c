package sim

// Model is the contract between the driver and compiled model code. A
// code generator (or a careful hand) emits one implementation per model;
// the runtime calls it in the fixed order documented on Runner.
//
// Sparse index layouts: SetInputs receives either a dense value slice
// with nil indices (one value per input variable, declaration order) or a
// count-prefixed index slice ([count, varIdx, ...]) with a parallel value
// slice. SetConstant receives one variable index plus its subscript
// indices, empty for scalars.
type Model interface {
	// InitConstants installs compile-time constant values and constructs
	// the model's lookups and delay states.
	InitConstants()

	// InitLevels computes initial level values.
	InitLevels()

	// EvalAux computes all auxiliaries at the current time.
	EvalAux()

	// EvalLevels computes the next-step level values.
	EvalLevels()

	// SetInputs writes dense (indices == nil) or sparse input values into
	// model constants.
	SetInputs(values []float64, indices []int32)

	// SetConstant overrides a single, possibly subscripted, constant.
	SetConstant(varIndex int32, subIndices []int32, value float64)

	// StoreOutputData emits the default output variable set through
	// out.OutputVar.
	StoreOutputData(out *Outputs)

	// StoreOutput emits one, possibly subscripted, variable through
	// out.OutputVar.
	StoreOutput(varIndex int32, subIndices []int32, out *Outputs)

	// Header returns the tab-delimited output column headers.
	Header() string

	// NumOutputs returns the number of variables in the default output
	// set.
	NumOutputs() int
}
