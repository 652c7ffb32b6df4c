// Package alloc implements the priority-curve allocation engine:
// ALLOCATE AVAILABLE, FIND MARKET PRICE, DEMAND AT PRICE and
// SUPPLY AT PRICE.
//
// 🚀 The model
//
//	Each requester carries a priority Profile describing a cumulative
//	distribution function over an abstract x axis: Fixed (no curve),
//	Rectangular (linear ramp), Triangular (quadratic pieces), Normal
//	(Zelen & Severo polynomial approximation) or Exponential (Laplace
//	double exponential). A greater priority shifts the curve's midpoint
//	right, putting more area under the curve at any given x.
//
//	Demand-side allocations use the complementary CDF Q(x) = 1 − CDF(x),
//	so higher priorities are served first as x rises; supply-side
//	allocations use the CDF directly, so supply grows with price.
//
// ✨ The search
//
//	AllocateAvailable and FindMarketPrice both binary-search the x axis:
//	start at the midpoint of the priority means with a first jump scaled
//	to their spread, halve the jump on every direction change, and stop
//	halving after three jumps in the same direction until the target is
//	overshot again (plain halving can stall short of the target). The
//	search is capped at 100 steps; on non-convergence it reports through
//	glog and returns the best effort so far.
//
// ⚠️ Known asymmetries, preserved on purpose
//
//   - FindMarketPrice reads the curve type from the first profile of each
//     side and assumes the side is uniform; mixing types within one side
//     is undefined behavior.
//   - The price search seeds its upper bound from the smallest positive
//     double rather than -MaxFloat64; when every priority is negative the
//     initial bracket is wrong.
//
// All slices returned by this package are freshly allocated per call;
// nothing aliases internal state.
package alloc
