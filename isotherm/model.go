package isotherm

import (
	"fmt"
	"slices"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/options"
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/solver"
	"github.com/arloliu/isofit/statepoint"
)

// Model binds an isotherm expression to a set of state points and owns the
// expression's parameter vector.
//
// Parameters start at the expression's initial guesses and change only
// through SetParameter, SetParameters or a successful Solve. Fitted results
// are available only after a successful Solve and are recomputed from the
// current parameters on every call.
//
// A Model is not safe for concurrent use. Distinct models share no state and
// can be solved in parallel.
type Model struct {
	expr   Expression
	data   *statepoint.Set
	params []float64
	solved bool
	diag   solver.Solution
}

// NewModel creates a model of data described by expr.
//
// A nil expr creates a bare data container which cannot be solved.
//
// Parameters:
//   - expr: The isotherm expression, or nil
//   - data: The state points to fit
//
// Returns:
//   - *Model: The model with parameters at their initial guesses
//   - error: errs.ErrInputShape for nil data, errs.ErrIncompatibleModel when
//     a binary expression meets unary data or a unary expression meets
//     mixture points
func NewModel(expr Expression, data *statepoint.Set) (*Model, error) {
	if data == nil {
		return nil, fmt.Errorf("nil state-point set: %w", errs.ErrInputShape)
	}

	m := &Model{expr: expr, data: data}
	if expr == nil {
		return m, nil
	}

	if expr.Binary() && !data.Binary() {
		return nil, fmt.Errorf("%s requires binary data: %w", expr.Type(), errs.ErrIncompatibleModel)
	}
	if !expr.Binary() && len(data.MixtureSubset()) > 0 {
		return nil, fmt.Errorf("%s cannot model %d mixture points: %w", expr.Type(), len(data.MixtureSubset()), errs.ErrIncompatibleModel)
	}

	specs := expr.Params()
	m.params = make([]float64, len(specs))
	for i, p := range specs {
		m.params[i] = p.Initial
	}

	return m, nil
}

// NewUnaryLangmuir creates a unary Langmuir model from raw data.
func NewUnaryLangmuir(f, q, t []float64, override scale.Reference) (*Model, error) {
	data, err := statepoint.NewUnary(f, q, t, override)
	if err != nil {
		return nil, err
	}

	return NewModel(UnaryLangmuir{}, data)
}

// NewBinaryLangmuir creates a binary Langmuir model of component i from raw data.
func NewBinaryLangmuir(fi, fj, q, t []float64, override scale.Reference) (*Model, error) {
	data, err := statepoint.NewBinary(fi, fj, q, t, override)
	if err != nil {
		return nil, err
	}

	return NewModel(BinaryLangmuir{}, data)
}

// Expression returns the isotherm expression, nil for a bare container.
func (m *Model) Expression() Expression {
	return m.expr
}

// Type returns the model type, ModelType(-1) for a bare container.
func (m *Model) Type() ModelType {
	if m.expr == nil {
		return ModelType(-1)
	}

	return m.expr.Type()
}

// Data returns the state points.
func (m *Model) Data() *statepoint.Set {
	return m.data
}

// ParameterNames returns the parameter names in vector order.
func (m *Model) ParameterNames() []string {
	if m.expr == nil {
		return nil
	}
	specs := m.expr.Params()
	names := make([]string, len(specs))
	for i, p := range specs {
		names[i] = p.Name
	}

	return names
}

// Parameters returns a copy of the dimensionless parameter vector.
func (m *Model) Parameters() []float64 {
	return slices.Clone(m.params)
}

// Parameter returns the value of the named parameter.
func (m *Model) Parameter(name string) (float64, error) {
	i := m.indexOf(name)
	if i < 0 {
		return 0, fmt.Errorf("%q in %s: %w", name, m.Type(), errs.ErrUnknownParameter)
	}

	return m.params[i], nil
}

// SetParameter sets the named parameter and invalidates fitted results.
func (m *Model) SetParameter(name string, value float64) error {
	i := m.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%q in %s: %w", name, m.Type(), errs.ErrUnknownParameter)
	}
	m.params[i] = value
	m.solved = false

	return nil
}

// SetParameters replaces the parameter vector and invalidates fitted results.
func (m *Model) SetParameters(values []float64) error {
	if len(values) != len(m.params) {
		return fmt.Errorf("%s expects %d parameters, got %d: %w", m.Type(), len(m.params), len(values), errs.ErrInvalidParameterCount)
	}
	copy(m.params, values)
	m.solved = false

	return nil
}

func (m *Model) indexOf(name string) int {
	return slices.Index(m.ParameterNames(), name)
}

// Solve fits the parameters to the data by robust least squares on the
// dimensionless residuals θ - θ_calc, starting from the current parameters.
//
// On success the parameters are replaced in place. On failure they are left
// as they were before the call and the model reports no fitted results.
//
// Parameters:
//   - s: The solver to delegate to
//   - opts: Optional settings (WithLoss, WithLossScale, WithMaxIterations, WithLogger)
//
// Returns:
//   - error: errs.ErrUnfittedModel for a bare container, errs.ErrNilSolver
//     for a nil solver, errs.ErrNotConverged when the solver fails
func (m *Model) Solve(s solver.Solver, opts ...FitOption) error {
	if m.expr == nil || len(m.params) == 0 {
		return errs.ErrUnfittedModel
	}
	if s == nil {
		return errs.ErrNilSolver
	}

	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	m.solved = false
	m.diag = solver.Solution{}

	n := m.data.Len()
	points := make([]statepoint.Conditions, n)
	for i := range points {
		points[i] = m.data.Point(i)
	}
	theta := m.data.Theta()

	specs := m.expr.Params()
	lower := make([]float64, len(specs))
	upper := make([]float64, len(specs))
	for i, p := range specs {
		lower[i], upper[i] = p.Lower, p.Upper
	}

	expr := m.expr
	problem := solver.Problem{
		Residuals: func(dst, x []float64) {
			for i, c := range points {
				dst[i] = theta[i] - expr.Dimensionless(c, x)
			}
		},
		NumResiduals:  n,
		Initial:       slices.Clone(m.params),
		Lower:         lower,
		Upper:         upper,
		Loss:          cfg.Loss,
		LossScale:     cfg.LossScale,
		MaxIterations: cfg.MaxIterations,
	}

	log := cfg.Logger.With("model", expr.Type().String(), "points", n)
	log.Debug("solving isotherm", "initial", problem.Initial, "loss", cfg.Loss.String())

	sol, err := s.Solve(problem)
	if err != nil {
		log.Warn("isotherm solve failed", "error", err)
		return fmt.Errorf("solve %s: %w", expr.Type(), err)
	}
	if len(sol.X) != len(m.params) {
		return fmt.Errorf("solver returned %d parameters for %s: %w", len(sol.X), expr.Type(), errs.ErrInvalidParameterCount)
	}

	copy(m.params, sol.X)
	m.solved = true
	m.diag = sol
	log.Info("isotherm solved", "status", sol.Status, "iterations", sol.Iterations, "cost", sol.Cost)

	return nil
}

// Solved reports whether the current parameters come from a successful solve.
func (m *Model) Solved() bool {
	return m.solved
}

// Diagnostics returns the solver outcome of the last successful solve.
func (m *Model) Diagnostics() (solver.Solution, error) {
	if !m.solved {
		return solver.Solution{}, errs.ErrNotSolved
	}

	return m.diag, nil
}

// evaluate returns θ_calc for the current parameters, ignoring the solved state.
func (m *Model) evaluate() []float64 {
	out := make([]float64, m.data.Len())
	for i := range out {
		out[i] = m.expr.Dimensionless(m.data.Point(i), m.params)
	}

	return out
}

// evaluateDimensional returns q_calc in raw units for the current parameters.
func (m *Model) evaluateDimensional() []float64 {
	ref := m.data.Reference()
	out := make([]float64, m.data.Len())
	for i := range out {
		out[i] = m.expr.Dimensional(m.data.RawPoint(i), m.params, ref)
	}

	return out
}

// ThetaCalc returns the calculated dimensionless loading at every point.
func (m *Model) ThetaCalc() ([]float64, error) {
	if !m.solved {
		return nil, errs.ErrNotSolved
	}

	return m.evaluate(), nil
}

// LoadingCalc returns the calculated loading in raw units at every point.
func (m *Model) LoadingCalc() ([]float64, error) {
	if !m.solved {
		return nil, errs.ErrNotSolved
	}

	return m.evaluateDimensional(), nil
}

// Objective returns the sum of squared dimensionless residuals.
func (m *Model) Objective() (float64, error) {
	if !m.solved {
		return 0, errs.ErrNotSolved
	}

	return SumSquaredResiduals(m.data.Theta(), m.evaluate())
}

// RSquared returns the coefficient of determination over all points.
func (m *Model) RSquared() (float64, error) {
	if !m.solved {
		return 0, errs.ErrNotSolved
	}

	return RSquared(m.data.Theta(), m.evaluate())
}

// RMSE returns the root mean square dimensionless residual.
func (m *Model) RMSE() (float64, error) {
	if !m.solved {
		return 0, errs.ErrNotSolved
	}

	return RMSE(m.data.Theta(), m.evaluate())
}

// Physical returns the fitted parameters in physical units. It returns nil
// when the expression has no physical interpretation.
func (m *Model) Physical() ([]PhysicalParam, error) {
	if !m.solved {
		return nil, errs.ErrNotSolved
	}
	reporter, ok := m.expr.(PhysicalReporter)
	if !ok {
		return nil, nil
	}

	return reporter.Physical(slices.Clone(m.params), m.data.Reference()), nil
}

// PlotData pairs empirical and calculated loadings for visualization.
type PlotData struct {
	// Raw conditions.
	OwnFugacity       []float64
	CompanionFugacity []float64
	Temperature       []float64
	// Dimensionless own fugacity f*.
	FugacityStar []float64
	// Dimensionless loadings.
	Theta     []float64
	ThetaCalc []float64
	// Loadings in raw units.
	Loading     []float64
	LoadingCalc []float64
	// Pure marks unary-subset points.
	Pure []bool
}

// PlotData returns the empirical and calculated loadings of every point in
// dimensionless and raw units.
func (m *Model) PlotData() (PlotData, error) {
	if !m.solved {
		return PlotData{}, errs.ErrNotSolved
	}

	pure := make([]bool, m.data.Len())
	fStar := make([]float64, m.data.Len())
	for i := range pure {
		pure[i] = m.data.IsUnary(i)
		fStar[i] = m.data.Point(i).OwnFugacity
	}

	return PlotData{
		OwnFugacity:       m.data.OwnFugacity(),
		CompanionFugacity: m.data.CompanionFugacity(),
		Temperature:       m.data.Temperature(),
		FugacityStar:      fStar,
		Theta:             m.data.Theta(),
		ThetaCalc:         m.evaluate(),
		Loading:           m.data.Loading(),
		LoadingCalc:       m.evaluateDimensional(),
		Pure:              pure,
	}, nil
}

// String returns a string representation of the model.
func (m *Model) String() string {
	if !m.solved {
		return fmt.Sprintf("Model{Type: %s, Points: %d, Solved: false}", m.Type(), m.data.Len())
	}
	r2, err := m.RSquared()
	if err != nil {
		return fmt.Sprintf("Model{Type: %s, Points: %d, Solved: true, Params: %v}", m.Type(), m.data.Len(), m.params)
	}

	return fmt.Sprintf("Model{Type: %s, Points: %d, Solved: true, R²: %.4f, Params: %v}", m.Type(), m.data.Len(), r2, m.params)
}
