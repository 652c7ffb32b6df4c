package alloc

import "errors"

// PType selects the cumulative distribution function of a priority curve.
// The numeric values match the packed profile encoding produced by model
// compilers.
type PType int

const (
	// Fixed allocates proportionally to requests; no curve.
	Fixed PType = iota

	// Rectangular ramps linearly across [priority−width/2, priority+width/2].
	Rectangular

	// Triangular rises and falls quadratically over the same interval.
	Triangular

	// Normal uses a normal CDF with mean=priority and sigma=width.
	Normal

	// Exponential uses a Laplace double-exponential CDF with scale=width.
	Exponential
)

// String returns the curve name for diagnostics.
func (p PType) String() string {
	switch p {
	case Fixed:
		return "Fixed"
	case Rectangular:
		return "Rectangular"
	case Triangular:
		return "Triangular"
	case Normal:
		return "Normal"
	case Exponential:
		return "Exponential"
	default:
		return "Unknown"
	}
}

// Profile is one requester's priority curve: the curve family, its
// midpoint (mean), its spread (full width for rectangular and triangular
// curves, sigma for normal, scale b for exponential) and a reserved
// fourth element carried through from the packed encoding.
type Profile struct {
	Type     PType
	Priority float64
	Width    float64
	Extra    float64
}

// profileStride is the packed size of one profile: type, priority, width,
// reserved.
const profileStride = 4

// ProfilesFromPacked views a packed [n*4]float64 profile array — the
// layout compiled model code produces — as a Profile slice.
func ProfilesFromPacked(pp []float64) []Profile {
	n := len(pp) / profileStride
	profiles := make([]Profile, n)
	for i := 0; i < n; i++ {
		base := i * profileStride
		profiles[i] = Profile{
			Type:     PType(pp[base]),
			Priority: pp[base+1],
			Width:    pp[base+2],
			Extra:    pp[base+3],
		}
	}
	return profiles
}

// MaxAgents bounds the number of agents in a single allocation call.
const MaxAgents = 80

// maxSearchSteps caps both x-axis searches; termination is guaranteed.
const maxSearchSteps = 100

// priceTolerance is the relative demand/supply gap accepted by
// FindMarketPrice.
const priceTolerance = 2e-7

// Sentinel errors. The engine never aborts: every error is paired with a
// degraded result (zeros or the best effort so far), and the caller
// decides whether to escalate.
var (
	// ErrTooManyAgents indicates a quantity vector longer than MaxAgents.
	ErrTooManyAgents = errors.New("alloc: number of allocation agents exceeds capacity")

	// ErrLengthMismatch indicates quantities and profiles differ in length.
	ErrLengthMismatch = errors.New("alloc: quantities and profiles must have equal length")

	// ErrNoConvergence indicates the 100-step search cap was reached.
	ErrNoConvergence = errors.New("alloc: search failed to converge")
)
