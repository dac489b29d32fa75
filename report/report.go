package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/hash"
	"github.com/arloliu/isofit/isotherm"
	"github.com/arloliu/isofit/scale"
)

// Version is the current report format version.
const Version = 1

// Parameter is a named dimensionless parameter value.
type Parameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Metrics holds the goodness-of-fit values. RSquared is nil when the loading
// of the data set is constant.
type Metrics struct {
	Objective float64  `json:"objective"`
	RSquared  *float64 `json:"r_squared,omitempty"`
	RMSE      float64  `json:"rmse"`
}

// Solver summarizes how the solver stopped.
type Solver struct {
	Status      string  `json:"status"`
	Iterations  int     `json:"iterations"`
	Evaluations int     `json:"evaluations"`
	Cost        float64 `json:"cost"`
}

// Point is one fitted state point in raw units.
type Point struct {
	OwnFugacity       float64 `json:"own_fugacity"`
	CompanionFugacity float64 `json:"companion_fugacity,omitempty"`
	Temperature       float64 `json:"temperature"`
	Loading           float64 `json:"loading"`
	LoadingCalc       float64 `json:"loading_calc"`
	Pure              bool    `json:"pure"`
}

// Report is the persisted result of one solved model.
type Report struct {
	Version     int                      `json:"version"`
	ID          string                   `json:"id"`
	Component   string                   `json:"component,omitempty"`
	Model       string                   `json:"model"`
	Formula     string                   `json:"formula"`
	Fingerprint string                   `json:"fingerprint"`
	Reference   scale.Reference          `json:"reference"`
	Parameters  []Parameter              `json:"parameters"`
	Physical    []isotherm.PhysicalParam `json:"physical,omitempty"`
	Metrics     Metrics                  `json:"metrics"`
	Solver      Solver                   `json:"solver"`
	Points      []Point                  `json:"points"`
	CreatedAt   time.Time                `json:"created_at"`
}

// FromModel builds a report of a solved model.
//
// Parameters:
//   - m: The solved model
//   - component: Optional label of the modeled component
//
// Returns:
//   - *Report: The report
//   - error: errs.ErrNotSolved if the model has not been solved
func FromModel(m *isotherm.Model, component string) (*Report, error) {
	if m == nil || !m.Solved() {
		return nil, errs.ErrNotSolved
	}

	diag, err := m.Diagnostics()
	if err != nil {
		return nil, err
	}
	pd, err := m.PlotData()
	if err != nil {
		return nil, err
	}
	objective, err := m.Objective()
	if err != nil {
		return nil, err
	}
	rmse, err := m.RMSE()
	if err != nil {
		return nil, err
	}
	physical, err := m.Physical()
	if err != nil {
		return nil, err
	}

	r := &Report{
		Version:     Version,
		Component:   component,
		Model:       m.Type().String(),
		Formula:     m.Expression().Formula(),
		Fingerprint: fmt.Sprintf("%016x", m.Data().Fingerprint()),
		Reference:   m.Data().Reference(),
		Physical:    physical,
		Metrics:     Metrics{Objective: objective, RMSE: rmse},
		Solver: Solver{
			Status:      diag.Status,
			Iterations:  diag.Iterations,
			Evaluations: diag.Evaluations,
			Cost:        diag.Cost,
		},
		CreatedAt: time.Now().UTC(),
	}
	r.ID = fmt.Sprintf("%016x", hash.ID(r.Model+"/"+r.Component+"/"+r.Fingerprint))

	r2, err := m.RSquared()
	switch {
	case err == nil:
		r.Metrics.RSquared = &r2
	case !errors.Is(err, errs.ErrDegenerateMetric):
		return nil, err
	}

	names := m.ParameterNames()
	values := m.Parameters()
	r.Parameters = make([]Parameter, len(names))
	for i := range names {
		r.Parameters[i] = Parameter{Name: names[i], Value: values[i]}
	}

	r.Points = make([]Point, len(pd.Loading))
	for i := range r.Points {
		r.Points[i] = Point{
			OwnFugacity:       pd.OwnFugacity[i],
			CompanionFugacity: pd.CompanionFugacity[i],
			Temperature:       pd.Temperature[i],
			Loading:           pd.Loading[i],
			LoadingCalc:       pd.LoadingCalc[i],
			Pure:              pd.Pure[i],
		}
	}

	return r, nil
}

// Validate checks the fields a reader relies on.
func (r *Report) Validate() error {
	if r.Version != Version {
		return fmt.Errorf("version %d: %w", r.Version, errs.ErrInvalidReport)
	}
	if isotherm.ModelTypeFromString(r.Model) < 0 {
		return fmt.Errorf("model %q: %w", r.Model, errs.ErrInvalidReport)
	}
	if len(r.Parameters) == 0 {
		return fmt.Errorf("no parameters: %w", errs.ErrInvalidReport)
	}

	return nil
}

// Parameter returns the value of the named dimensionless parameter.
func (r *Report) Parameter(name string) (float64, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}

	return 0, false
}
