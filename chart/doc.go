// Package chart renders fitted isotherm models as images.
//
// Two plots are available: a parity plot of calculated against empirical
// dimensionless loading, and an isotherm plot of loading against own
// fugacity in raw units. Plots are built with gonum/plot and saved in any
// format it supports, chosen by file extension.
package chart
