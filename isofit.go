// Package isofit fits adsorption isotherms in dimensionless form.
//
// Isofit is built for small experimental data sets: a few dozen state points
// of fugacity, loading and temperature per component. Variables are scaled
// to O(1) by reference values before fitting, so a single solver setting
// works across units and orders of magnitude.
//
// # Core Features
//
//   - Dimensionless unary and binary Langmuir isotherms with van 't Hoff affinities
//   - Legacy temperature-independent variants (BET, quadratic, dual-site)
//   - Robust losses (soft_l1, Huber, Cauchy, arctan) over bounded parameters
//   - Combining rule seeding binary models from unary fits
//   - JSON reports with optional compression (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Fitting a unary Langmuir isotherm:
//
//	import "github.com/arloliu/isofit"
//
//	model, err := isofit.FitUnaryLangmuir(f, q, T, scale.Reference{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r2, _ := model.RSquared()
//	phys, _ := model.Physical()
//
// Fitting a binary mixture from raw columns:
//
//	res, err := isofit.FitMixture(isofit.MixtureData{
//	    A:           isofit.Component{Name: "H2S", Fugacity: fH2S, Loading: qH2S},
//	    B:           isofit.Component{Name: "CH4", Fugacity: fCH4, Loading: qCH4},
//	    Temperature: T,
//	}, nil)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the isotherm and
// solver packages for the most common workflows. For custom expressions,
// solvers or reference scales, use those packages directly.
package isofit

import (
	"github.com/arloliu/isofit/internal/options"
	"github.com/arloliu/isofit/isotherm"
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/solver"
)

var defaultMinimizerOptions = []solver.MinimizerOption{
	solver.WithMethod(solver.MethodBFGS),
	solver.WithStallTolerance(solver.DefaultStallTolerance),
}

// NewSolver creates a gonum-backed minimizer with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see solver.MinimizerOption)
//
// Returns:
//   - *solver.Minimizer: The created solver
//   - error: An error if an option is invalid
//
// Available options:
//   - solver.WithMethod(solver.MethodBFGS|MethodLBFGS|MethodNelderMead|MethodGradientDescent)
//   - solver.WithGradientThreshold(float64)
//   - solver.WithFunctionTolerance(float64)
//   - solver.WithStallTolerance(float64)
//   - solver.WithLogger(*slog.Logger)
func NewSolver(opts ...solver.MinimizerOption) (*solver.Minimizer, error) {
	return solver.NewMinimizer(options.Combine(defaultMinimizerOptions...), options.Combine(opts...))
}

// DefaultSolver creates the solver used when a helper is given none: BFGS
// over the robust cost with central-difference gradients.
func DefaultSolver() (*solver.Minimizer, error) {
	return solver.NewMinimizer(defaultMinimizerOptions...)
}

// FitUnaryLangmuir builds a unary Langmuir model from raw data and solves it
// with the default solver.
//
// Parameters:
//   - f: Fugacities
//   - q: Loadings
//   - t: Temperatures
//   - override: Reference scales, zero fields select the data maximum
//   - opts: Fit options (see isotherm.FitOption)
//
// Returns:
//   - *isotherm.Model: The solved model
//   - error: An input error or errs.ErrNotConverged
func FitUnaryLangmuir(f, q, t []float64, override scale.Reference, opts ...isotherm.FitOption) (*isotherm.Model, error) {
	m, err := isotherm.NewUnaryLangmuir(f, q, t, override)
	if err != nil {
		return nil, err
	}

	return m, solveDefault(m, opts)
}

// FitBinaryLangmuir builds a binary Langmuir model of component i from raw
// data and solves it with the default solver, starting from the
// expression's initial guesses.
//
// Use FitMixture to seed the binary models from unary fits instead.
func FitBinaryLangmuir(fi, fj, q, t []float64, override scale.Reference, opts ...isotherm.FitOption) (*isotherm.Model, error) {
	m, err := isotherm.NewBinaryLangmuir(fi, fj, q, t, override)
	if err != nil {
		return nil, err
	}

	return m, solveDefault(m, opts)
}

func solveDefault(m *isotherm.Model, opts []isotherm.FitOption) error {
	s, err := DefaultSolver()
	if err != nil {
		return err
	}

	return m.Solve(s, opts...)
}
