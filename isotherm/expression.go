package isotherm

import (
	"math"

	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/statepoint"
)

// GasConstant is the molar gas constant in J/(mol·K).
const GasConstant = 8.314

// Param describes one fittable parameter in dimensionless units.
type Param struct {
	// Name identifies the parameter, e.g. "H_i_star".
	Name string
	// Initial is the deterministic starting value used before any solve.
	Initial float64
	// Lower and Upper bound the parameter. Infinite values leave a side open.
	Lower float64
	Upper float64
}

// free returns an unbounded parameter.
func free(name string, initial float64) Param {
	return Param{Name: name, Initial: initial, Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// nonNegative returns a parameter bounded below by zero.
func nonNegative(name string, initial float64) Param {
	return Param{Name: name, Initial: initial, Lower: 0, Upper: math.Inf(1)}
}

// Expression is the governing equation of one isotherm variant.
//
// Parameter vectors passed to an Expression are always dimensionless and in
// the order reported by Params.
type Expression interface {
	// Type returns the model type.
	Type() ModelType
	// Binary reports whether the expression models a companion component.
	Binary() bool
	// Params returns the parameter descriptions in vector order.
	Params() []Param
	// Dimensionless returns the calculated dimensionless loading θ at
	// dimensionless conditions c. Binary variants drop the companion term
	// when c.Pure is set.
	Dimensionless(c statepoint.Conditions, x []float64) float64
	// Dimensional returns the calculated loading in raw units at raw
	// conditions c. It equals ref.Loading times Dimensionless evaluated at
	// the matching dimensionless conditions.
	Dimensional(c statepoint.Conditions, x []float64, ref scale.Reference) float64
	// Formula returns a human-readable form of the dimensionless equation.
	Formula() string
}

// PhysicalParam is a fitted parameter expressed in physical units.
type PhysicalParam struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// PhysicalReporter is implemented by expressions whose dimensionless
// parameters map to named physical constants.
type PhysicalReporter interface {
	Physical(x []float64, ref scale.Reference) []PhysicalParam
}

// Units used in physical reports. Loading and fugacity keep the units of the
// raw data.
const (
	UnitLoading         = "loading"
	UnitInverseFugacity = "1/fugacity"
	UnitEnthalpy        = "J/mol"
)
