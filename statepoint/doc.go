// Package statepoint holds the equilibrium observations an isotherm is fitted to.
//
// A Set stores the raw data next to its dimensionless form. Both are computed
// once at construction and never mutated. Changing the reference scales
// produces a new Set through WithReference.
//
// Unary sets carry (f, q, T) per point. Binary sets carry (f_i, f_j, q_i, T):
// the loading of the own component i is modeled while the companion
// fugacity f_j only competes for adsorption sites. Binary points whose
// companion fugacity is below NegligibleFugacity, measured in raw units, form
// the unary subset. The remaining points form the mixture subset. The two
// subsets partition the set.
package statepoint
