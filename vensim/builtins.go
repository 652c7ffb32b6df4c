package vensim

import (
	"math"

	"github.com/katalvlaran/sdsim/core"
)

// Pulse returns 1.0 while the half-step midpoint time lies strictly inside
// (start, start+width). A zero width is treated as one TIME STEP, producing
// a pulse exactly one step wide.
func Pulse(env *core.Env, start, width float64) float64 {
	timePlus := env.Time + env.TimeStep/2.0
	if width == 0.0 {
		width = env.TimeStep
	}
	if timePlus > start && timePlus < start+width {
		return 1.0
	}
	return 0.0
}

// PulseTrain returns 1.0 when any pulse of the train
// {start + k*interval : k = 0..floor((end-start)/interval)} fires at the
// current time and the time has not passed end.
func PulseTrain(env *core.Env, start, width, interval, end float64) float64 {
	if interval <= 0 {
		return 0.0
	}
	n := math.Floor((end - start) / interval)
	for k := 0.0; env.Le(k, n); k++ {
		if Pulse(env, start+k*interval, width) != 0.0 && env.Le(env.Time, end) {
			return 1.0
		}
	}
	return 0.0
}

// Ramp returns 0 until the start time is exceeded, then interpolates with
// the given slope until the end time, and holds the end value thereafter.
// A start time past the end time yields an unbounded ramp.
func Ramp(env *core.Env, slope, startTime, endTime float64) float64 {
	if env.Gt(env.Time, startTime) {
		if env.Lt(env.Time, endTime) || env.Gt(startTime, endTime) {
			return slope * (env.Time - startTime)
		}
		return slope * (endTime - startTime)
	}
	return 0.0
}

// Step returns height once the half-step midpoint time passes stepTime,
// and 0 before.
func Step(env *core.Env, height, stepTime float64) float64 {
	if env.Time+env.TimeStep/2.0 > stepTime {
		return height
	}
	return 0.0
}

// XIDZ returns a/b, or x when the divisor is within epsilon of zero.
func XIDZ(env *core.Env, a, b, x float64) float64 {
	if env.ApproxZero(b) {
		return x
	}
	return a / b
}

// ZIDZ returns a/b, or 0 when the divisor is within epsilon of zero.
func ZIDZ(env *core.Env, a, b float64) float64 {
	if env.ApproxZero(b) {
		return 0.0
	}
	return a / b
}

// Integ advances a level by one Euler step: value + rate * TIME STEP.
func Integ(env *core.Env, value, rate float64) float64 {
	return value + rate*env.TimeStep
}

// SampleIfTrue returns input when condition is truthy (nonzero) and the
// current value otherwise.
func SampleIfTrue(current, condition, input float64) float64 {
	if condition != 0.0 {
		return input
	}
	return current
}

// IfThenElse returns onTrue when the condition is truthy (nonzero), else
// onFalse.
func IfThenElse(condition, onTrue, onFalse float64) float64 {
	if condition != 0.0 {
		return onTrue
	}
	return onFalse
}

// Integer truncates toward zero.
func Integer(x float64) float64 { return math.Trunc(x) }

// Quantum returns a when b is non-positive, else b * trunc(a/b): the
// largest multiple of b not exceeding a in magnitude.
func Quantum(a, b float64) float64 {
	if b <= 0 {
		return a
	}
	return b * math.Trunc(a/b)
}

// GammaLn returns the natural log of the gamma function.
func GammaLn(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// Elementwise math wrappers in the shape compiled model code expects.

// Abs returns |x|.
func Abs(x float64) float64 { return math.Abs(x) }

// Exp returns e**x.
func Exp(x float64) float64 { return math.Exp(x) }

// Ln returns the natural logarithm of x.
func Ln(x float64) float64 { return math.Log(x) }

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 { return math.Sqrt(x) }

// Sin returns the sine of x (radians).
func Sin(x float64) float64 { return math.Sin(x) }

// Cos returns the cosine of x (radians).
func Cos(x float64) float64 { return math.Cos(x) }

// Tan returns the tangent of x (radians).
func Tan(x float64) float64 { return math.Tan(x) }

// ArcSin returns the arcsine of x.
func ArcSin(x float64) float64 { return math.Asin(x) }

// ArcCos returns the arccosine of x.
func ArcCos(x float64) float64 { return math.Acos(x) }

// ArcTan returns the arctangent of x.
func ArcTan(x float64) float64 { return math.Atan(x) }

// Min returns the smaller of a and b.
func Min(a, b float64) float64 { return math.Min(a, b) }

// Max returns the larger of a and b.
func Max(a, b float64) float64 { return math.Max(a, b) }

// Modulo returns the floating-point remainder of a/b.
func Modulo(a, b float64) float64 { return math.Mod(a, b) }

// Power returns a**b.
func Power(a, b float64) float64 { return math.Pow(a, b) }
