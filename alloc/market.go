package alloc

import (
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/sdsim/core"
)

// FindMarketPrice balances supply against demand: it searches for the
// price at which total demand allocations (complementary CDF) equal total
// supply allocations (CDF) within priceTolerance, and returns that price.
//
// The curve type of each side is read from its first profile; the engine
// assumes each side is uniform, and mixing types within a side is
// undefined behavior. When either side is Fixed, its total allocation is
// precomputed as the smaller of total demand and total supply and held
// constant through the search.
func FindMarketPrice(env *core.Env, demandQty []float64, demandProfiles []Profile,
	supplyQty []float64, supplyProfiles []Profile) (float64, error) {
	if len(demandQty) > MaxAgents {
		glog.Errorf("FIND MARKET PRICE: %d demanders exceed the internal maximum of %d", len(demandQty), MaxAgents)
		return 0.0, ErrTooManyAgents
	}
	if len(supplyQty) > MaxAgents {
		glog.Errorf("FIND MARKET PRICE: %d suppliers exceed the internal maximum of %d", len(supplyQty), MaxAgents)
		return 0.0, ErrTooManyAgents
	}
	if len(demandProfiles) != len(demandQty) || len(supplyProfiles) != len(supplyQty) {
		glog.Errorf("FIND MARKET PRICE: profile and quantity lengths differ")
		return 0.0, ErrLengthMismatch
	}
	if len(demandQty) == 0 || len(supplyQty) == 0 {
		return 0.0, nil
	}

	// Bracket the price search with the priority means of both sides.
	// The upper seed is the smallest positive double, not -MaxFloat64;
	// all-negative priorities therefore mis-bound the bracket.
	minPrice := math.MaxFloat64
	maxPrice := math.SmallestNonzeroFloat64
	for _, p := range demandProfiles {
		minPrice = math.Min(p.Priority, minPrice)
		maxPrice = math.Max(p.Priority, maxPrice)
	}
	for _, p := range supplyProfiles {
		minPrice = math.Min(p.Priority, minPrice)
		maxPrice = math.Max(p.Priority, maxPrice)
	}

	x := (maxPrice + minPrice) / 2.0
	delta := (maxPrice - minPrice) / 2.0
	price := 0.0
	numSteps := 0
	lastSign := 1.0
	sameDirection := 0

	// Each side's type comes from its first profile only.
	demandType := demandProfiles[0].Type
	supplyType := supplyProfiles[0].Type
	totalDemandAllocations := 0.0
	totalSupplyAllocations := 0.0
	if demandType == Fixed || supplyType == Fixed {
		totalDemand := 0.0
		for _, q := range demandQty {
			totalDemand += q
		}
		totalSupply := 0.0
		for _, q := range supplyQty {
			totalSupply += q
		}
		// Clamp the fixed side so we don't overallocate.
		if demandType == Fixed {
			totalDemandAllocations = math.Min(totalDemand, totalSupply)
		}
		if supplyType == Fixed {
			totalSupplyAllocations = math.Min(totalSupply, totalDemand)
		}
	}

	for {
		if demandType != Fixed {
			totalDemandAllocations = 0.0
			for i, q := range demandQty {
				if q > 0.0 {
					totalDemandAllocations += q * fraction(demandProfiles[i], x, true)
				}
			}
		}
		if supplyType != Fixed {
			totalSupplyAllocations = 0.0
			for i, q := range supplyQty {
				if q > 0.0 {
					totalSupplyAllocations += q * fraction(supplyProfiles[i], x, false)
				}
			}
		}

		numSteps++
		if numSteps >= maxSearchSteps {
			glog.Errorf("FIND MARKET PRICE failed to converge at time=%g with total_demand_allocations=%.6f, total_supply_allocations=%.6f",
				env.Time, totalDemandAllocations, totalSupplyAllocations)
			return price, ErrNoConvergence
		}

		sign := 1.0
		if totalDemandAllocations < totalSupplyAllocations {
			sign = -1.0
		}
		if sign == lastSign {
			sameDirection++
		} else {
			sameDirection = 0
		}
		lastSign = sign
		if sameDirection < 3 {
			delta = sign * math.Abs(delta) / 2.0
		} else {
			delta = sign * math.Abs(delta)
		}
		price = x
		x += delta
		glog.V(1).Infof("FIND MARKET PRICE: price=%g delta=%g demand=%g supply=%g",
			price, delta, totalDemandAllocations, totalSupplyAllocations)

		if env.Difference(totalDemandAllocations, totalSupplyAllocations) < priceTolerance {
			return price, nil
		}
	}
}

// allocationsAtPrice evaluates one side's allocations at a fixed price.
// A Fixed first profile echoes the quantities; otherwise each quantity is
// scaled by its own profile's fraction at the price.
func allocationsAtPrice(quantities []float64, profiles []Profile, price float64, isDemand bool) ([]float64, error) {
	n := len(quantities)
	allocations := make([]float64, n)
	if n > MaxAgents {
		glog.Errorf("alloc: %d allocation agents exceed the internal maximum of %d", n, MaxAgents)
		return allocations, ErrTooManyAgents
	}
	if len(profiles) != n {
		glog.Errorf("alloc: %d profiles for %d agents", len(profiles), n)
		return allocations, ErrLengthMismatch
	}
	if n == 0 {
		return allocations, nil
	}
	if profiles[0].Type == Fixed {
		copy(allocations, quantities)
		return allocations, nil
	}
	for i, q := range quantities {
		if q > 0.0 {
			allocations[i] = q * fraction(profiles[i], price, isDemand)
		}
	}
	return allocations, nil
}

// DemandAtPrice distributes the demand side at the given price using each
// demander's complementary CDF.
func DemandAtPrice(quantities []float64, profiles []Profile, price float64) ([]float64, error) {
	return allocationsAtPrice(quantities, profiles, price, true)
}

// SupplyAtPrice distributes the supply side at the given price using each
// supplier's CDF.
func SupplyAtPrice(quantities []float64, profiles []Profile, price float64) ([]float64, error) {
	return allocationsAtPrice(quantities, profiles, price, false)
}
