package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/options"
	"github.com/arloliu/isofit/internal/pool"
)

// Method selects the gonum optimization algorithm used by Minimizer.
type Method int

const (
	// MethodBFGS is the quasi-Newton BFGS method.
	MethodBFGS Method = iota
	// MethodLBFGS is the limited-memory BFGS method.
	MethodLBFGS
	// MethodNelderMead is the derivative-free Nelder-Mead simplex method.
	MethodNelderMead
	// MethodGradientDescent is steepest descent with a line search.
	MethodGradientDescent
)

var methodNames = map[Method]string{
	MethodBFGS:            "bfgs",
	MethodLBFGS:           "lbfgs",
	MethodNelderMead:      "nelder-mead",
	MethodGradientDescent: "gradient-descent",
}

// String returns the string representation of the method.
func (m Method) String() string {
	if name, exists := methodNames[m]; exists {
		return name
	}

	return "unknown"
}

var methodFromString = map[string]Method{
	"bfgs":             MethodBFGS,
	"lbfgs":            MethodLBFGS,
	"nelder-mead":      MethodNelderMead,
	"gradient-descent": MethodGradientDescent,
}

// MethodFromString returns the Method for a given name.
// Returns Method(-1) for unknown names.
func MethodFromString(name string) Method {
	if m, exists := methodFromString[strings.ToLower(name)]; exists {
		return m
	}

	return Method(-1)
}

// SupportedMethods returns the sorted names of all methods.
func SupportedMethods() []string {
	names := make([]string, 0, len(methodFromString))
	for name := range methodFromString {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func errUnknownMethod(m Method) error {
	return fmt.Errorf("unknown method %d, supported: %s: %w", m, strings.Join(SupportedMethods(), ", "), errs.ErrInvalidValue)
}

func (m Method) gonum() optimize.Method {
	switch m {
	case MethodLBFGS:
		return &optimize.LBFGS{}
	case MethodNelderMead:
		return &optimize.NelderMead{}
	case MethodGradientDescent:
		return &optimize.GradientDescent{}
	default:
		return &optimize.BFGS{}
	}
}

// Default tolerances of Minimizer.
const (
	DefaultGradientThreshold = 1e-12
	DefaultFunctionTolerance = 1e-15
	DefaultStallTolerance    = 1e-6
)

// functionConvergeIterations is the number of iterations without a cost
// improvement above the function tolerance after which the run stops.
const functionConvergeIterations = 20

// Minimizer solves problems with gonum's optimize package.
//
// The robust cost is minimized over the internal unbounded variables and its
// gradient is computed with central finite differences. A Minimizer holds no
// per-solve state and is safe for concurrent use.
type Minimizer struct {
	method            Method
	gradientThreshold float64
	functionTolerance float64
	stallTolerance    float64
	logger            *slog.Logger
}

var _ Solver = (*Minimizer)(nil)

// NewMinimizer creates a gonum-backed solver.
//
// Parameters:
//   - opts: optional settings (WithMethod, WithGradientThreshold, WithFunctionTolerance,
//     WithStallTolerance, WithLogger)
//
// Returns:
//   - *Minimizer: the solver, BFGS by default
//   - error: an invalid option
func NewMinimizer(opts ...MinimizerOption) (*Minimizer, error) {
	m := &Minimizer{
		method:            MethodBFGS,
		gradientThreshold: DefaultGradientThreshold,
		functionTolerance: DefaultFunctionTolerance,
		stallTolerance:    DefaultStallTolerance,
		logger:            slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(m, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// Method returns the configured optimization method.
func (m *Minimizer) Method() Method {
	return m.method
}

// Solve minimizes the robust cost of p.
func (m *Minimizer) Solve(p Problem) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	n := len(p.Initial)
	b := newBounds(p.Lower, p.Upper, n)
	if !b.contains(p.Initial) {
		m.logger.Debug("initial point outside bounds, clamping", "initial", p.Initial)
	}

	x := make([]float64, n)
	r, release := pool.GetFloat64Slice(p.NumResiduals)
	defer release()
	evaluations := 0
	cost := func(y []float64) float64 {
		evaluations++
		b.toExternal(x, y)
		p.Residuals(r, x)
		c := p.Cost(r)
		if math.IsNaN(c) {
			return math.Inf(1)
		}

		return c
	}
	fdSettings := &fd.Settings{Formula: fd.Central}
	grad := func(g, y []float64) {
		fd.Gradient(g, cost, y, fdSettings)
	}

	problem := optimize.Problem{Func: cost, Grad: grad}
	settings := &optimize.Settings{
		MajorIterations:   p.maxIterations(),
		GradientThreshold: m.gradientThreshold,
		Converger: &optimize.FunctionConverge{
			Absolute:   m.functionTolerance,
			Relative:   m.functionTolerance,
			Iterations: functionConvergeIterations,
		},
	}

	y0 := b.toInternal(p.Initial)
	res, err := optimize.Minimize(problem, y0, settings, m.method.gonum())
	if res == nil {
		return Solution{}, fmt.Errorf("%s: %w: %w", m.method, errs.ErrNotConverged, err)
	}

	sol := Solution{
		X:           b.toExternal(make([]float64, n), res.X),
		Cost:        res.F,
		Iterations:  res.MajorIterations,
		Evaluations: evaluations,
		Status:      res.Status.String(),
	}
	log := m.logger.With("method", m.method.String(), "status", sol.Status,
		"iterations", sol.Iterations, "evaluations", sol.Evaluations, "cost", sol.Cost)

	if math.IsInf(sol.Cost, 0) || math.IsNaN(sol.Cost) {
		log.Debug("solver ended on a non-finite cost")
		return Solution{}, fmt.Errorf("%s ended on a non-finite cost: %w", m.method, errs.ErrNotConverged)
	}

	if err == nil {
		if converged(res.Status) {
			log.Debug("solver converged")
			return sol, nil
		}
		log.Debug("solver stopped early")

		return Solution{}, fmt.Errorf("%s stopped with status %s: %w", m.method, res.Status, errs.ErrNotConverged)
	}

	if errors.Is(err, optimize.ErrLinesearcherFailure) || errors.Is(err, optimize.ErrNoProgress) {
		g := fd.Gradient(nil, cost, res.X, fdSettings)
		norm := floats.Norm(g, math.Inf(1))
		if norm <= m.stallTolerance {
			log.Debug("line search stalled at a stationary point, accepting", "gradient", norm)
			sol.Status = "Stalled"

			return sol, nil
		}
		log.Debug("line search stalled away from a stationary point", "gradient", norm)
	}

	return Solution{}, fmt.Errorf("%s: %w: %w", m.method, errs.ErrNotConverged, err)
}

func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success, optimize.MethodConverge, optimize.GradientThreshold,
		optimize.FunctionConvergence, optimize.FunctionThreshold, optimize.StepConvergence:
		return true
	default:
		return false
	}
}
