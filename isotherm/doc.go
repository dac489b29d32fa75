// Package isotherm fits adsorption isotherms to state-point data in
// dimensionless space.
//
// An Expression describes the governing equation of one isotherm variant in
// dimensionless variables, its parameters with initial guesses and bounds,
// and the matching equation in raw units. A Model binds an Expression to a
// statepoint.Set and fits the parameters through a pluggable solver.Solver.
//
// # Variants
//
//   - Langmuir: θ = q_mi_star·K/(1+K), K = exp(A_i - H_i_star/T*)·f*
//   - Binary Langmuir: θ_i = q_mi_star·K_i/(1+K_i+K_j) at mixture points and
//     the unary form at unary-subset points
//   - BET, Quadratic, Dual-Site and Dual-Site-Quadratic: temperature
//     independent forms in f*
//
// Physical constants follow from the dimensionless parameters through the
// reference scales:
//
//	q_mi    = q_mi_star · q_ref
//	k_i_inf = exp(A_i) / f_ref
//	dH_i    = R · T_ref · H_i_star
//
// # Fitting
//
// Solve minimizes a robust loss of the residuals θ - θ_calc with the
// parameter vector as the only unknown:
//
//	m, err := isotherm.NewUnaryLangmuir(p, q, T, scale.Reference{})
//	if err != nil {
//	    return err
//	}
//	if err := m.Solve(s); err != nil {
//	    return err
//	}
//	r2, err := m.RSquared()
//
// A failed solve surfaces errs.ErrNotConverged and leaves the model
// unsolved. Fitted results are recomputed from the parameters on every call.
//
// # Combining Rule
//
// CombineUnary seeds a binary model from the solved unary fits of its two
// components. The binary solve then refits all five parameters jointly.
package isotherm
