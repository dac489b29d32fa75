package solver

import (
	"log/slog"

	"github.com/arloliu/isofit/internal/options"
)

// MinimizerOption is a functional option for Minimizer.
type MinimizerOption = options.Option[*Minimizer]

// WithMethod sets the gonum optimization method.
func WithMethod(method Method) MinimizerOption {
	return options.New(func(m *Minimizer) error {
		if _, ok := methodNames[method]; !ok {
			return errUnknownMethod(method)
		}
		m.method = method

		return nil
	})
}

// WithGradientThreshold sets the infinity norm of the gradient below which
// the minimizer stops with success.
func WithGradientThreshold(threshold float64) MinimizerOption {
	return options.NoError(func(m *Minimizer) {
		m.gradientThreshold = threshold
	})
}

// WithFunctionTolerance sets the absolute and relative cost change below
// which the minimizer stops with function convergence.
func WithFunctionTolerance(tol float64) MinimizerOption {
	return options.NoError(func(m *Minimizer) {
		m.functionTolerance = tol
	})
}

// WithStallTolerance sets the gradient infinity norm under which a run whose
// line search stopped making progress is still accepted as converged.
func WithStallTolerance(tol float64) MinimizerOption {
	return options.NoError(func(m *Minimizer) {
		m.stallTolerance = tol
	})
}

// WithLogger sets the logger used to report solver outcomes.
func WithLogger(logger *slog.Logger) MinimizerOption {
	return options.NoError(func(m *Minimizer) {
		if logger != nil {
			m.logger = logger
		}
	})
}

// LMOption is a functional option for LevenbergMarquardt.
type LMOption = options.Option[*LevenbergMarquardt]

// WithDamping sets the initial damping factor τ of the Levenberg-Marquardt iteration.
func WithDamping(tau float64) LMOption {
	return options.NoError(func(lm *LevenbergMarquardt) {
		lm.tau = tau
	})
}

// WithLMTolerance sets the gradient and step tolerances of the Levenberg-Marquardt iteration.
func WithLMTolerance(gradTol, stepTol float64) LMOption {
	return options.NoError(func(lm *LevenbergMarquardt) {
		lm.eps1 = gradTol
		lm.eps2 = stepTol
	})
}

// WithLMLogger sets the logger used to report Levenberg-Marquardt outcomes.
func WithLMLogger(logger *slog.Logger) LMOption {
	return options.NoError(func(lm *LevenbergMarquardt) {
		if logger != nil {
			lm.logger = logger
		}
	})
}
