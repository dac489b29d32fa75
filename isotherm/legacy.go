package isotherm

import (
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/statepoint"
)

// The variants in this file are temperature independent. Their capacities
// scale with q_ref, affinities multiplying c scale with f_ref and affinities
// multiplying c² scale with f_ref².

const (
	unitInverseFugacitySq = "1/fugacity²"
)

func langmuirSite(m, k, c float64) float64 {
	return m * k * c / (1 + k*c)
}

func quadraticSite(m, k1, k2, c float64) float64 {
	return m * (k1 + 2*k2*c) * c / (1 + k1*c + k2*c*c)
}

func bet(m, k1, k2, c float64) float64 {
	return m * k1 * c / ((1 - k2*c) * (1 + k1*c - k2*c))
}

// BET is the Brunauer-Emmett-Teller isotherm.
//
// Parameters: [M_star, k1_star, k2_star]. k2_star is kept below 1 so the
// denominator stays positive for f* <= 1.
type BET struct{}

var (
	_ Expression       = BET{}
	_ PhysicalReporter = BET{}
)

// Type returns ModelTypeBET.
func (BET) Type() ModelType { return ModelTypeBET }

// Binary returns false.
func (BET) Binary() bool { return false }

// Params returns [M_star, k1_star, k2_star].
func (BET) Params() []Param {
	return []Param{
		nonNegative("M_star", 1),
		nonNegative("k1_star", 1),
		{Name: "k2_star", Initial: 0.1, Lower: 0, Upper: 1},
	}
}

// Dimensionless returns θ = M* k1* f* / ((1 - k2* f*)(1 + k1* f* - k2* f*)).
func (BET) Dimensionless(c statepoint.Conditions, x []float64) float64 {
	return bet(x[0], x[1], x[2], c.OwnFugacity)
}

// Dimensional returns the loading in raw units.
func (BET) Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64 {
	return bet(x[0]*ref.Loading, x[1]/ref.Fugacity, x[2]/ref.Fugacity, c.OwnFugacity)
}

// Formula returns the dimensionless equation.
func (BET) Formula() string {
	return "θ = M_star·k1_star·f*/((1-k2_star·f*)(1+k1_star·f*-k2_star·f*))"
}

// Physical returns M, k1 and k2.
func (BET) Physical(x []float64, ref scale.Reference) []PhysicalParam {
	return []PhysicalParam{
		{Name: "M", Value: x[0] * ref.Loading, Unit: UnitLoading},
		{Name: "k1", Value: x[1] / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "k2", Value: x[2] / ref.Fugacity, Unit: UnitInverseFugacity},
	}
}

// Quadratic is the quadratic (cooperative) isotherm.
//
// Parameters: [M_star, k1_star, k2_star].
type Quadratic struct{}

var (
	_ Expression       = Quadratic{}
	_ PhysicalReporter = Quadratic{}
)

// Type returns ModelTypeQuadratic.
func (Quadratic) Type() ModelType { return ModelTypeQuadratic }

// Binary returns false.
func (Quadratic) Binary() bool { return false }

// Params returns [M_star, k1_star, k2_star].
func (Quadratic) Params() []Param {
	return []Param{
		nonNegative("M_star", 1),
		nonNegative("k1_star", 1),
		nonNegative("k2_star", 0.1),
	}
}

// Dimensionless returns θ = M* (k1* + 2 k2* f*) f* / (1 + k1* f* + k2* f*²).
func (Quadratic) Dimensionless(c statepoint.Conditions, x []float64) float64 {
	return quadraticSite(x[0], x[1], x[2], c.OwnFugacity)
}

// Dimensional returns the loading in raw units.
func (Quadratic) Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64 {
	f2 := ref.Fugacity * ref.Fugacity
	return quadraticSite(x[0]*ref.Loading, x[1]/ref.Fugacity, x[2]/f2, c.OwnFugacity)
}

// Formula returns the dimensionless equation.
func (Quadratic) Formula() string {
	return "θ = M_star·(k1_star+2·k2_star·f*)·f*/(1+k1_star·f*+k2_star·f*²)"
}

// Physical returns M, k1 and k2.
func (Quadratic) Physical(x []float64, ref scale.Reference) []PhysicalParam {
	return []PhysicalParam{
		{Name: "M", Value: x[0] * ref.Loading, Unit: UnitLoading},
		{Name: "k1", Value: x[1] / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "k2", Value: x[2] / (ref.Fugacity * ref.Fugacity), Unit: unitInverseFugacitySq},
	}
}

// DualSite is the sum of two independent Langmuir sites.
//
// Parameters: [M1_star, k1_star, M2_star, k2_star].
type DualSite struct{}

var (
	_ Expression       = DualSite{}
	_ PhysicalReporter = DualSite{}
)

// Type returns ModelTypeDualSite.
func (DualSite) Type() ModelType { return ModelTypeDualSite }

// Binary returns false.
func (DualSite) Binary() bool { return false }

// Params returns [M1_star, k1_star, M2_star, k2_star].
func (DualSite) Params() []Param {
	return []Param{
		nonNegative("M1_star", 1),
		nonNegative("k1_star", 1),
		nonNegative("M2_star", 0.5),
		nonNegative("k2_star", 0.1),
	}
}

// Dimensionless returns θ = M1* k1* f* / (1 + k1* f*) + M2* k2* f* / (1 + k2* f*).
func (DualSite) Dimensionless(c statepoint.Conditions, x []float64) float64 {
	return langmuirSite(x[0], x[1], c.OwnFugacity) + langmuirSite(x[2], x[3], c.OwnFugacity)
}

// Dimensional returns the loading in raw units.
func (DualSite) Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64 {
	return langmuirSite(x[0]*ref.Loading, x[1]/ref.Fugacity, c.OwnFugacity) +
		langmuirSite(x[2]*ref.Loading, x[3]/ref.Fugacity, c.OwnFugacity)
}

// Formula returns the dimensionless equation.
func (DualSite) Formula() string {
	return "θ = M1_star·k1_star·f*/(1+k1_star·f*) + M2_star·k2_star·f*/(1+k2_star·f*)"
}

// Physical returns M1, k1, M2 and k2.
func (DualSite) Physical(x []float64, ref scale.Reference) []PhysicalParam {
	return []PhysicalParam{
		{Name: "M1", Value: x[0] * ref.Loading, Unit: UnitLoading},
		{Name: "k1", Value: x[1] / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "M2", Value: x[2] * ref.Loading, Unit: UnitLoading},
		{Name: "k2", Value: x[3] / ref.Fugacity, Unit: UnitInverseFugacity},
	}
}

// DualSiteQuadratic is the sum of two quadratic sites.
//
// Parameters: [M1_star, k1_star, k2_star, M2_star, k3_star, k4_star].
type DualSiteQuadratic struct{}

var (
	_ Expression       = DualSiteQuadratic{}
	_ PhysicalReporter = DualSiteQuadratic{}
)

// Type returns ModelTypeDualSiteQuadratic.
func (DualSiteQuadratic) Type() ModelType { return ModelTypeDualSiteQuadratic }

// Binary returns false.
func (DualSiteQuadratic) Binary() bool { return false }

// Params returns [M1_star, k1_star, k2_star, M2_star, k3_star, k4_star].
func (DualSiteQuadratic) Params() []Param {
	return []Param{
		nonNegative("M1_star", 1),
		nonNegative("k1_star", 1),
		nonNegative("k2_star", 0.1),
		nonNegative("M2_star", 0.5),
		nonNegative("k3_star", 0.1),
		nonNegative("k4_star", 0.01),
	}
}

// Dimensionless returns the sum of two quadratic sites in dimensionless form.
func (DualSiteQuadratic) Dimensionless(c statepoint.Conditions, x []float64) float64 {
	return quadraticSite(x[0], x[1], x[2], c.OwnFugacity) + quadraticSite(x[3], x[4], x[5], c.OwnFugacity)
}

// Dimensional returns the loading in raw units.
func (DualSiteQuadratic) Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64 {
	f2 := ref.Fugacity * ref.Fugacity
	return quadraticSite(x[0]*ref.Loading, x[1]/ref.Fugacity, x[2]/f2, c.OwnFugacity) +
		quadraticSite(x[3]*ref.Loading, x[4]/ref.Fugacity, x[5]/f2, c.OwnFugacity)
}

// Formula returns the dimensionless equation.
func (DualSiteQuadratic) Formula() string {
	return "θ = M1_star·(k1_star+2·k2_star·f*)·f*/(1+k1_star·f*+k2_star·f*²) + M2_star·(k3_star+2·k4_star·f*)·f*/(1+k3_star·f*+k4_star·f*²)"
}

// Physical returns M1, k1, k2, M2, k3 and k4.
func (DualSiteQuadratic) Physical(x []float64, ref scale.Reference) []PhysicalParam {
	f2 := ref.Fugacity * ref.Fugacity
	return []PhysicalParam{
		{Name: "M1", Value: x[0] * ref.Loading, Unit: UnitLoading},
		{Name: "k1", Value: x[1] / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "k2", Value: x[2] / f2, Unit: unitInverseFugacitySq},
		{Name: "M2", Value: x[3] * ref.Loading, Unit: UnitLoading},
		{Name: "k3", Value: x[4] / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "k4", Value: x[5] / f2, Unit: unitInverseFugacitySq},
	}
}
