package alloc

import (
	"math"

	"github.com/golang/glog"
)

// invSqrt2Pi is 1/sqrt(2*pi), the unit normal density at zero.
const invSqrt2Pi = 0.39894228040143267794

// cdfUnitNormal approximates the standard normal CDF for x ≥ 0.
// Ref: Zelen & Severo (1964) in Handbook Of Mathematical Functions,
// Abramowitz and Stegun, 26.2.17.
func cdfUnitNormal(x float64) float64 {
	const p = 0.2316419
	b := [5]float64{0.31938153, -0.356563782, 1.781477937, -1.821255978, 1.330274429}
	t := 1.0 / (1.0 + p*x)
	y := 0.0
	k := t
	for i := 0; i < 5; i++ {
		y += b[i] * k
		k *= t
	}
	return 1.0 - (invSqrt2Pi*math.Exp(-(x*x)/2.0))*y
}

// cdfNormal evaluates the normal CDF with mean mu and spread sigma,
// reflecting the polynomial approximation for x below the mean.
func cdfNormal(x, mu, sigma float64) float64 {
	if x < mu {
		return 1.0 - cdfUnitNormal(-(x-mu)/sigma)
	}
	return cdfUnitNormal((x - mu) / sigma)
}

// clamp01 clamps x to [0,1].
func clamp01(x float64) float64 {
	if x < 0.0 {
		return 0.0
	}
	if x > 1.0 {
		return 1.0
	}
	return x
}

// cdfRectangular ramps linearly from 0 to 1 over
// [priority−width/2, priority+width/2]; a degenerate interval collapses
// to a step at zero.
func cdfRectangular(x, priority, width float64) float64 {
	a := priority - width/2.0
	b := priority + width/2.0
	if b <= a {
		if x <= 0.0 {
			return 0.0
		}
		return 1.0
	}
	if x <= a {
		return 0.0
	}
	if x >= b {
		return 1.0
	}
	return clamp01((x - a) / (b - a))
}

// cdfTriangular is the CDF of the isoceles triangle over
// [priority−width/2, priority+width/2]: quadratic up to the midpoint mode,
// complementary quadratic beyond it.
func cdfTriangular(x, priority, width float64) float64 {
	a := priority - width/2.0
	b := priority + width/2.0
	xLeft := math.Min(a, b)
	xRight := math.Max(a, b)
	mode := (xLeft + xRight) / 2.0
	if x <= xLeft {
		return 0.0
	}
	if x >= xRight {
		return 1.0
	}
	c1 := (xRight - xLeft) * (mode - xLeft)
	c2 := (xRight - xLeft) * (xRight - mode)
	if x <= mode {
		return clamp01((x - xLeft) * (x - xLeft) / c1)
	}
	return clamp01(1.0 - (xRight-x)*(xRight-x)/c2)
}

// cdfExponential is the Laplace double-exponential CDF with location mu
// and scale b.
func cdfExponential(x, mu, b float64) float64 {
	if x < mu {
		return 0.5 * math.Exp((x-mu)/b)
	}
	return 1.0 - 0.5*math.Exp(-(x-mu)/b)
}

// CDF evaluates the profile's cumulative distribution function at x: the
// fraction of a supply-side quantity released at that point. An unknown
// or Fixed curve type is reported and contributes zero; Fixed profiles
// are resolved by the callers before any curve is evaluated.
func CDF(p Profile, x float64) float64 {
	switch p.Type {
	case Rectangular:
		return cdfRectangular(x, p.Priority, p.Width)
	case Triangular:
		return cdfTriangular(x, p.Priority, p.Width)
	case Normal:
		return cdfNormal(x, p.Priority, p.Width)
	case Exponential:
		return cdfExponential(x, p.Priority, p.Width)
	default:
		glog.Errorf("alloc: unknown priority type %d", int(p.Type))
		return 0.0
	}
}

// Q evaluates the complementary CDF at x: the fraction of a demand-side
// quantity still requested at that point.
func Q(p Profile, x float64) float64 {
	switch p.Type {
	case Rectangular, Triangular, Normal, Exponential:
		return 1.0 - CDF(p, x)
	default:
		glog.Errorf("alloc: unknown priority type %d", int(p.Type))
		return 0.0
	}
}

// fraction dispatches to Q for demand-side evaluation and CDF for the
// supply side.
func fraction(p Profile, x float64, isDemand bool) float64 {
	if isDemand {
		return Q(p, x)
	}
	return CDF(p, x)
}
