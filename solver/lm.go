package solver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/options"
	"github.com/arloliu/isofit/internal/pool"
)

// Default settings of LevenbergMarquardt.
const (
	DefaultDamping = 1e-3
	DefaultLMTol   = 1e-10
)

// LevenbergMarquardt solves problems with the Levenberg-Marquardt method of
// github.com/maorshutman/lm.
//
// The Jacobian is evaluated serially by central differences. Only a
// StepConvergence stop counts as converged; hitting the iteration cap
// returns errs.ErrNotConverged. The backend does not report iteration
// counts, so Solution.Iterations is always zero. A LevenbergMarquardt holds
// no per-solve state and is safe for concurrent use.
type LevenbergMarquardt struct {
	tau    float64
	eps1   float64
	eps2   float64
	logger *slog.Logger
}

var _ Solver = (*LevenbergMarquardt)(nil)

// NewLevenbergMarquardt creates a Levenberg-Marquardt solver.
func NewLevenbergMarquardt(opts ...LMOption) (*LevenbergMarquardt, error) {
	s := &LevenbergMarquardt{
		tau:    DefaultDamping,
		eps1:   DefaultLMTol,
		eps2:   DefaultLMTol,
		logger: slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Solve minimizes the robust cost of p.
func (s *LevenbergMarquardt) Solve(p Problem) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	n := len(p.Initial)
	b := newBounds(p.Lower, p.Upper, n)
	x := make([]float64, n)
	evaluations := 0
	residuals := func(dst, y []float64) {
		evaluations++
		b.toExternal(x, y)
		p.Residuals(dst, x)
		p.scaleResiduals(dst)
	}

	jacSettings := &fd.JacobianSettings{Formula: fd.Central}
	prob := lm.LMProblem{
		Dim:  n,
		Size: p.NumResiduals,
		Func: residuals,
		Jac: func(dst *mat.Dense, y []float64) {
			fd.Jacobian(dst, residuals, y, jacSettings)
		},
		InitParams: b.toInternal(p.Initial),
		Tau:        s.tau,
		Eps1:       s.eps1,
		Eps2:       s.eps2,
	}

	res, err := runLM(prob, &lm.Settings{Iterations: p.maxIterations(), ObjectiveTol: 1e-16})
	if err != nil {
		return Solution{}, fmt.Errorf("levenberg-marquardt: %w: %w", errs.ErrNotConverged, err)
	}
	if res == nil || len(res.X) != n {
		return Solution{}, fmt.Errorf("levenberg-marquardt returned no parameters: %w", errs.ErrNotConverged)
	}

	log := s.logger.With("method", "levenberg-marquardt", "status", res.Status.String(), "evaluations", evaluations)
	if res.Status != optimize.StepConvergence {
		log.Debug("solver stopped early")
		return Solution{}, fmt.Errorf("levenberg-marquardt stopped with status %s: %w", res.Status, errs.ErrNotConverged)
	}

	sol := Solution{
		X:           b.toExternal(make([]float64, n), res.X),
		Evaluations: evaluations,
		Status:      res.Status.String(),
	}
	r, release := pool.GetFloat64Slice(p.NumResiduals)
	defer release()
	p.Residuals(r, sol.X)
	sol.Cost = p.Cost(r)

	log = log.With("cost", sol.Cost)
	if math.IsNaN(sol.Cost) || math.IsInf(sol.Cost, 0) {
		log.Debug("solver ended on a non-finite cost")
		return Solution{}, fmt.Errorf("levenberg-marquardt ended on a non-finite cost: %w", errs.ErrNotConverged)
	}
	log.Debug("solver converged")

	return sol, nil
}

// runLM calls lm.LM and turns its panic on a singular normal matrix into an
// error.
func runLM(prob lm.LMProblem, settings *lm.Settings) (res *lm.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%v", r)
		}
	}()

	return lm.LM(prob, settings)
}
