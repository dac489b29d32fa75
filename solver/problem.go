package solver

import (
	"fmt"
	"math"

	"github.com/arloliu/isofit/errs"
)

// DefaultMaxIterations is the iteration cap used when a problem sets none.
const DefaultMaxIterations = 3000

// ResidualFunc writes the residual vector for parameters x into dst.
// It must not retain either slice.
type ResidualFunc func(dst, x []float64)

// Problem is a bounded nonlinear least-squares problem.
type Problem struct {
	// Residuals evaluates the residual vector.
	Residuals ResidualFunc
	// NumResiduals is the length of the residual vector.
	NumResiduals int
	// Initial is the starting parameter vector.
	Initial []float64
	// Lower and Upper hold per-parameter bounds. Use math.Inf for an
	// unbounded side. Nil slices leave every parameter unbounded.
	Lower []float64
	Upper []float64
	// Loss is the robust loss applied to the residuals. The zero value is LossLinear.
	Loss Loss
	// LossScale is the soft margin C between inlier and outlier residuals.
	// Zero means 1.
	LossScale float64
	// MaxIterations caps the solver's major iterations. Zero means DefaultMaxIterations.
	MaxIterations int
}

// Solution is the outcome of a successful solve.
type Solution struct {
	// X holds the fitted parameters.
	X []float64 `json:"x"`
	// Cost is the robust cost at X.
	Cost float64 `json:"cost"`
	// Iterations is the number of major iterations, when the backend reports it.
	Iterations int `json:"iterations"`
	// Evaluations is the number of residual evaluations.
	Evaluations int `json:"evaluations"`
	// Status describes why the solver stopped.
	Status string `json:"status"`
}

// Solver minimizes the robust cost of a Problem.
//
// Implementations return errs.ErrNotConverged, wrapped with the backend's
// reason, when no optimal point is found. They never return the starting
// point as a successful solution of a failed run.
type Solver interface {
	Solve(p Problem) (Solution, error)
}

// Validate checks the problem dimensions and bounds.
func (p *Problem) Validate() error {
	n := len(p.Initial)
	if p.Residuals == nil {
		return fmt.Errorf("nil residual function: %w", errs.ErrInvalidValue)
	}
	if n == 0 {
		return fmt.Errorf("empty parameter vector: %w", errs.ErrInvalidParameterCount)
	}
	if p.NumResiduals <= 0 {
		return fmt.Errorf("no residuals: %w", errs.ErrInputShape)
	}
	if p.Lower != nil && len(p.Lower) != n {
		return fmt.Errorf("%d lower bounds for %d parameters: %w", len(p.Lower), n, errs.ErrInvalidParameterCount)
	}
	if p.Upper != nil && len(p.Upper) != n {
		return fmt.Errorf("%d upper bounds for %d parameters: %w", len(p.Upper), n, errs.ErrInvalidParameterCount)
	}
	for i := range n {
		if math.IsNaN(p.Initial[i]) || math.IsInf(p.Initial[i], 0) {
			return fmt.Errorf("initial[%d] = %g: %w", i, p.Initial[i], errs.ErrInvalidValue)
		}
		if p.Lower != nil && p.Upper != nil && !(p.Lower[i] < p.Upper[i]) {
			return fmt.Errorf("bounds [%g, %g] of parameter %d: %w", p.Lower[i], p.Upper[i], i, errs.ErrInvalidValue)
		}
	}
	if !p.Loss.valid() {
		return fmt.Errorf("loss %d: %w", p.Loss, errs.ErrInvalidValue)
	}
	if p.LossScale < 0 || math.IsNaN(p.LossScale) {
		return fmt.Errorf("loss scale %g: %w", p.LossScale, errs.ErrInvalidValue)
	}

	return nil
}

func (p *Problem) lossScale() float64 {
	if p.LossScale == 0 {
		return 1
	}

	return p.LossScale
}

func (p *Problem) maxIterations() int {
	if p.MaxIterations <= 0 {
		return DefaultMaxIterations
	}

	return p.MaxIterations
}

// Cost returns 0.5 * Σ C² ρ(r² / C²) for the residual vector r.
func (p *Problem) Cost(r []float64) float64 {
	c := p.lossScale()
	c2 := c * c
	loss := p.Loss

	var sum float64
	for _, v := range r {
		sum += c2 * loss.Rho(v*v/c2)
	}

	return 0.5 * sum
}

// scaleResiduals rewrites r in place so that 0.5 * Σ r² equals Cost(r).
func (p *Problem) scaleResiduals(r []float64) {
	if p.Loss == LossLinear {
		return
	}
	c := p.lossScale()
	c2 := c * c
	loss := p.Loss
	for i, v := range r {
		rho := loss.Rho(v * v / c2)
		r[i] = math.Copysign(c*math.Sqrt(rho), v)
	}
}
