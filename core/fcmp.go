package core

import "math"

// Cmp compares x1 and x2 with a tolerance scaled to their magnitude,
// following Knuth's approximate comparison (The Art of Computer
// Programming, Vol 2, §4.2.2). It returns -1, 0 or 1 when x1 is
// respectively less than, approximately equal to, or greater than x2.
func Cmp(x1, x2, epsilon float64) int {
	// Scale the tolerance by the larger binary exponent of the operands.
	_, exp1 := math.Frexp(x1)
	_, exp2 := math.Frexp(x2)
	exp := exp1
	if exp2 > exp1 {
		exp = exp2
	}
	delta := math.Ldexp(epsilon, exp)
	diff := x1 - x2
	switch {
	case diff > delta:
		return 1
	case diff < -delta:
		return -1
	default:
		return 0
	}
}

// ApproxZero reports whether x is within Epsilon of zero.
func (e *Env) ApproxZero(x float64) bool {
	return math.Abs(x) < e.Epsilon
}

// Difference returns the absolute difference when x or y is near zero and
// the relative difference |1 − x/y| otherwise, with y as the baseline.
// The allocation engine's convergence tests are phrased in terms of it.
func (e *Env) Difference(x, y float64) float64 {
	if e.ApproxZero(x) || e.ApproxZero(y) {
		return math.Abs(x - y)
	}
	return math.Abs(1.0 - x/y)
}

// ApproxEqual reports whether x and y are equal up to Epsilon in the
// absolute-or-relative Difference metric.
func (e *Env) ApproxEqual(x, y float64) bool {
	return e.Difference(x, y) < e.Epsilon
}

// Le reports x ≤ y under the magnitude-scaled tolerance.
func (e *Env) Le(x, y float64) bool { return Cmp(x, y, e.Epsilon) <= 0 }

// Ge reports x ≥ y under the magnitude-scaled tolerance.
func (e *Env) Ge(x, y float64) bool { return Cmp(x, y, e.Epsilon) >= 0 }

// Lt reports x < y under the magnitude-scaled tolerance.
func (e *Env) Lt(x, y float64) bool { return Cmp(x, y, e.Epsilon) < 0 }

// Gt reports x > y under the magnitude-scaled tolerance.
func (e *Env) Gt(x, y float64) bool { return Cmp(x, y, e.Epsilon) > 0 }
