// Package errs defines the sentinel errors returned across isofit.
//
// Functions wrap these values with context using fmt.Errorf and %w, so callers
// should match them with errors.Is rather than comparing error strings.
package errs

import "errors"

// Input and normalization errors.
var (
	// ErrInputShape is returned when input sequences are empty or their lengths differ.
	ErrInputShape = errors.New("input sequences have inconsistent shape")
	// ErrDegenerateScale is returned when a reference scale resolves to zero, a negative value or NaN.
	ErrDegenerateScale = errors.New("reference scale must be strictly positive")
	// ErrInvalidValue is returned when raw data contains negative, NaN or infinite values.
	ErrInvalidValue = errors.New("invalid input value")
)

// Model and fitting errors.
var (
	// ErrUnfittedModel is returned when solving a model that has no isotherm expression attached.
	ErrUnfittedModel = errors.New("model has no fittable parameters")
	// ErrNilSolver is returned when Solve is called without a solver.
	ErrNilSolver = errors.New("solver is nil")
	// ErrNotConverged is returned when the solver fails to reach an optimal point.
	ErrNotConverged = errors.New("solver did not converge")
	// ErrNotSolved is returned when fitted results are requested before a successful solve.
	ErrNotSolved = errors.New("model has not been solved")
	// ErrDegenerateMetric is returned when R² is undefined because the loading is constant.
	ErrDegenerateMetric = errors.New("metric is undefined for constant loading")
	// ErrInvalidParameterCount is returned when a parameter vector has the wrong length.
	ErrInvalidParameterCount = errors.New("invalid parameter count")
	// ErrUnknownParameter is returned when a parameter name is not part of the model.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrUnknownModelType is returned for an unsupported isotherm model name.
	ErrUnknownModelType = errors.New("unknown isotherm model type")
	// ErrIncompatibleModel is returned when models of the wrong kind are combined.
	ErrIncompatibleModel = errors.New("incompatible isotherm model")
)

// Persistence and ingestion errors.
var (
	// ErrInvalidCompressionType is returned for an unsupported report compression.
	ErrInvalidCompressionType = errors.New("invalid compression type")
	// ErrInvalidReport is returned when a stored report cannot be decoded.
	ErrInvalidReport = errors.New("invalid report")
	// ErrMissingColumn is returned when a requested column does not exist in a table.
	ErrMissingColumn = errors.New("missing column")
)
