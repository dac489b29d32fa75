// Package solver provides the bounded nonlinear least-squares backends used
// to fit isotherm parameters.
//
// A Problem describes a residual vector function, a starting point, optional
// per-parameter bounds and a robust loss. A Solver minimizes
//
//	cost(x) = 0.5 * Σ C² ρ(r_k(x)² / C²)
//
// where ρ is the loss function and C the loss scale. Two backends are
// provided:
//
//   - Minimizer wraps gonum's optimize package (BFGS by default, with LBFGS,
//     Nelder-Mead and gradient descent available) and differentiates the cost
//     with central finite differences.
//   - LevenbergMarquardt wraps github.com/maorshutman/lm with a numeric
//     Jacobian. Robust losses are applied by rescaling the residuals so that
//     their squared sum equals the robust cost.
//
// Bounds are enforced with smooth variable transforms, so both backends run
// unconstrained internally:
//
//	lower only:  x = lb - 1 + sqrt(y² + 1)
//	upper only:  x = ub + 1 - sqrt(y² + 1)
//	both:        x = lb + (ub - lb) * (sin(y) + 1) / 2
package solver
