package isotherm

import (
	"math"

	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/statepoint"
)

// Parameter names of the Langmuir variants.
const (
	ParamOwnEnthalpy       = "H_i_star"
	ParamOwnAffinity       = "A_i"
	ParamOwnCapacity       = "q_mi_star"
	ParamCompanionEnthalpy = "H_j_star"
	ParamCompanionAffinity = "A_j"
)

// Initial guesses shared by the Langmuir variants. The enthalpy guess of -10
// corresponds to about -25 kJ/mol at 300 K.
const (
	initialEnthalpy = -10.0
	initialAffinity = -1.0
	initialCapacity = 1.0
)

// affinity returns K = exp(A - H*/T*) f*.
func affinity(h, a, tStar, fStar float64) float64 {
	return math.Exp(a-h/tStar) * fStar
}

// physicalAffinity returns K = k_inf exp(-ΔH/(R T)) f with k_inf = exp(A)/f_ref
// and ΔH = R T_ref H*.
func physicalAffinity(h, a, t, f float64, ref scale.Reference) float64 {
	kInf := math.Exp(a) / ref.Fugacity
	dH := GasConstant * ref.Temperature * h

	return kInf * math.Exp(-dH/(GasConstant*t)) * f
}

// UnaryLangmuir is the single-component Langmuir isotherm with a van 't Hoff
// temperature dependence of the affinity.
//
// Parameters: [H_i_star, A_i, q_mi_star].
type UnaryLangmuir struct{}

var (
	_ Expression       = UnaryLangmuir{}
	_ PhysicalReporter = UnaryLangmuir{}
)

// Type returns ModelTypeLangmuir.
func (UnaryLangmuir) Type() ModelType { return ModelTypeLangmuir }

// Binary returns false.
func (UnaryLangmuir) Binary() bool { return false }

// Params returns [H_i_star, A_i, q_mi_star].
func (UnaryLangmuir) Params() []Param {
	return []Param{
		free(ParamOwnEnthalpy, initialEnthalpy),
		free(ParamOwnAffinity, initialAffinity),
		nonNegative(ParamOwnCapacity, initialCapacity),
	}
}

// Dimensionless returns θ = q*_m K / (1 + K).
func (UnaryLangmuir) Dimensionless(c statepoint.Conditions, x []float64) float64 {
	k := affinity(x[0], x[1], c.Temperature, c.OwnFugacity)
	return x[2] * k / (1 + k)
}

// Dimensional returns q = q_m K / (1 + K) in raw units.
func (UnaryLangmuir) Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64 {
	k := physicalAffinity(x[0], x[1], c.Temperature, c.OwnFugacity, ref)
	return x[2] * ref.Loading * k / (1 + k)
}

// Formula returns the dimensionless equation.
func (UnaryLangmuir) Formula() string {
	return "θ = q_mi_star·K_i/(1+K_i), K_i = exp(A_i - H_i_star/T*)·f_i*"
}

// Physical returns q_mi, k_i_inf and dH_i.
func (UnaryLangmuir) Physical(x []float64, ref scale.Reference) []PhysicalParam {
	return []PhysicalParam{
		{Name: "q_mi", Value: x[2] * ref.Loading, Unit: UnitLoading},
		{Name: "k_i_inf", Value: math.Exp(x[1]) / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "dH_i", Value: GasConstant * ref.Temperature * x[0], Unit: UnitEnthalpy},
	}
}

// BinaryLangmuir is the competitive two-component Langmuir isotherm for the
// loading of component i in the presence of companion j.
//
// Parameters: [H_i_star, A_i, q_mi_star, H_j_star, A_j]. The companion
// capacity does not enter the own-component loading.
type BinaryLangmuir struct{}

var (
	_ Expression       = BinaryLangmuir{}
	_ PhysicalReporter = BinaryLangmuir{}
)

// Type returns ModelTypeBinaryLangmuir.
func (BinaryLangmuir) Type() ModelType { return ModelTypeBinaryLangmuir }

// Binary returns true.
func (BinaryLangmuir) Binary() bool { return true }

// Params returns [H_i_star, A_i, q_mi_star, H_j_star, A_j].
func (BinaryLangmuir) Params() []Param {
	return []Param{
		free(ParamOwnEnthalpy, initialEnthalpy),
		free(ParamOwnAffinity, initialAffinity),
		nonNegative(ParamOwnCapacity, initialCapacity),
		free(ParamCompanionEnthalpy, initialEnthalpy),
		free(ParamCompanionAffinity, initialAffinity),
	}
}

// Dimensionless returns θ_i = q*_mi K_i / (1 + K_i + K_j) at mixture points
// and θ_i = q*_mi K_i / (1 + K_i) at unary-subset points.
func (BinaryLangmuir) Dimensionless(c statepoint.Conditions, x []float64) float64 {
	ki := affinity(x[0], x[1], c.Temperature, c.OwnFugacity)
	if c.Pure {
		return x[2] * ki / (1 + ki)
	}
	kj := affinity(x[3], x[4], c.Temperature, c.CompanionFugacity)

	return x[2] * ki / (1 + ki + kj)
}

// Dimensional returns the own-component loading in raw units.
func (BinaryLangmuir) Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64 {
	qm := x[2] * ref.Loading
	ki := physicalAffinity(x[0], x[1], c.Temperature, c.OwnFugacity, ref)
	if c.Pure {
		return qm * ki / (1 + ki)
	}
	kj := physicalAffinity(x[3], x[4], c.Temperature, c.CompanionFugacity, ref)

	return qm * ki / (1 + ki + kj)
}

// Formula returns the dimensionless mixture equation.
func (BinaryLangmuir) Formula() string {
	return "θ_i = q_mi_star·K_i/(1+K_i+K_j), K = exp(A - H_star/T*)·f*"
}

// Physical returns q_mi, k_i_inf, dH_i, k_j_inf and dH_j.
func (BinaryLangmuir) Physical(x []float64, ref scale.Reference) []PhysicalParam {
	return []PhysicalParam{
		{Name: "q_mi", Value: x[2] * ref.Loading, Unit: UnitLoading},
		{Name: "k_i_inf", Value: math.Exp(x[1]) / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "dH_i", Value: GasConstant * ref.Temperature * x[0], Unit: UnitEnthalpy},
		{Name: "k_j_inf", Value: math.Exp(x[4]) / ref.Fugacity, Unit: UnitInverseFugacity},
		{Name: "dH_j", Value: GasConstant * ref.Temperature * x[3], Unit: UnitEnthalpy},
	}
}
