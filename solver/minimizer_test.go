package solver

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/isofit/errs"
)

func rosenbrock(dst, x []float64) {
	dst[0] = 10 * (x[1] - x[0]*x[0])
	dst[1] = 1 - x[0]
}

// langmuirProblem fits q = M k p / (1 + k p) to slightly noisy data with
// M = 2 and k = 0.01, parameterized as (ln k, M).
func langmuirProblem() Problem {
	p := []float64{10, 50, 100, 200, 400}
	noise := []float64{0.004, -0.003, 0.002, -0.004, 0.003}
	q := make([]float64, len(p))
	for i := range p {
		q[i] = 2 * 0.01 * p[i] / (1 + 0.01*p[i]) * (1 + noise[i])
	}

	return Problem{
		Residuals: func(dst, x []float64) {
			k := math.Exp(x[0])
			for i := range p {
				dst[i] = q[i] - x[1]*k*p[i]/(1+k*p[i])
			}
		},
		NumResiduals: len(p),
		Initial:      []float64{-3, 1},
		Lower:        []float64{math.Inf(-1), 0},
		Upper:        []float64{math.Inf(1), math.Inf(1)},
		Loss:         LossSoftL1,
	}
}

func TestMinimizerMethods(t *testing.T) {
	for _, method := range []Method{MethodBFGS, MethodLBFGS} {
		t.Run(method.String(), func(t *testing.T) {
			m, err := NewMinimizer(WithMethod(method))
			require.NoError(t, err)

			sol, err := m.Solve(langmuirProblem())
			require.NoError(t, err)

			assert.InDelta(t, 0.01, math.Exp(sol.X[0]), 0.0005)
			assert.InDelta(t, 2.0, sol.X[1], 0.05)
			assert.Positive(t, sol.Iterations)
			assert.Positive(t, sol.Evaluations)
			assert.Less(t, sol.Cost, 1e-4)
		})
	}
}

func TestMinimizerRosenbrock(t *testing.T) {
	m, err := NewMinimizer()
	require.NoError(t, err)
	assert.Equal(t, MethodBFGS, m.Method())

	sol, err := m.Solve(Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{-1.2, 1}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, sol.X, 1e-4)
}

func TestMinimizerNelderMead(t *testing.T) {
	m, err := NewMinimizer(WithMethod(MethodNelderMead))
	require.NoError(t, err)

	sol, err := m.Solve(Problem{
		Residuals: func(dst, x []float64) {
			dst[0] = x[0] - 1
			dst[1] = x[1] - 2
		},
		NumResiduals: 2,
		Initial:      []float64{0, 0},
	})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, sol.X, 1e-2)
}

func TestMinimizerRespectsLowerBound(t *testing.T) {
	m, err := NewMinimizer()
	require.NoError(t, err)

	sol, err := m.Solve(Problem{
		Residuals:    func(dst, x []float64) { dst[0] = x[0] + 1 },
		NumResiduals: 1,
		Initial:      []float64{1},
		Lower:        []float64{0},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sol.X[0], 0.0)
	assert.Less(t, sol.X[0], 1e-3)
}

func TestMinimizerIterationLimit(t *testing.T) {
	m, err := NewMinimizer()
	require.NoError(t, err)

	_, err = m.Solve(Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{-1.2, 1}, MaxIterations: 1})
	require.ErrorIs(t, err, errs.ErrNotConverged)
}

func TestMinimizerInvalidProblem(t *testing.T) {
	m, err := NewMinimizer()
	require.NoError(t, err)

	tests := []struct {
		name string
		p    Problem
		want error
	}{
		{"nil residuals", Problem{NumResiduals: 1, Initial: []float64{1}}, errs.ErrInvalidValue},
		{"no parameters", Problem{Residuals: rosenbrock, NumResiduals: 2}, errs.ErrInvalidParameterCount},
		{"no residuals", Problem{Residuals: rosenbrock, Initial: []float64{1, 1}}, errs.ErrInputShape},
		{"bound count", Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{1, 1}, Lower: []float64{0}}, errs.ErrInvalidParameterCount},
		{"crossed bounds", Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{1, 1}, Lower: []float64{0, 2}, Upper: []float64{1, 1}}, errs.ErrInvalidValue},
		{"nan initial", Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{math.NaN(), 1}}, errs.ErrInvalidValue},
		{"bad loss", Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{1, 1}, Loss: Loss(9)}, errs.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Solve(tt.p)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewMinimizerUnknownMethod(t *testing.T) {
	_, err := NewMinimizer(WithMethod(Method(99)))
	require.ErrorIs(t, err, errs.ErrInvalidValue)

	assert.Equal(t, MethodLBFGS, MethodFromString("LBFGS"))
	assert.Equal(t, Method(-1), MethodFromString("newton"))
	assert.Equal(t, []string{"bfgs", "gradient-descent", "lbfgs", "nelder-mead"}, SupportedMethods())
}

func TestLevenbergMarquardt(t *testing.T) {
	s, err := NewLevenbergMarquardt()
	require.NoError(t, err)

	sol, err := s.Solve(Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{-1.2, 1}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, sol.X, 1e-3)
	assert.Positive(t, sol.Evaluations)

	sol, err = s.Solve(langmuirProblem())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol.X[1], 0.05)
}

func TestLevenbergMarquardtNotConverged(t *testing.T) {
	s, err := NewLevenbergMarquardt()
	require.NoError(t, err)

	tests := []struct {
		name    string
		problem Problem
	}{
		{
			name:    "rosenbrock iteration cap",
			problem: Problem{Residuals: rosenbrock, NumResiduals: 2, Initial: []float64{-1.2, 1}, MaxIterations: 1},
		},
		{
			name: "langmuir iteration cap",
			problem: func() Problem {
				p := langmuirProblem()
				p.MaxIterations = 1
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := s.Solve(tt.problem)
			require.ErrorIs(t, err, errs.ErrNotConverged)
			assert.Contains(t, err.Error(), "IterationLimit")
			assert.Nil(t, sol.X)
		})
	}
}

func TestLevenbergMarquardtConcurrentSolves(t *testing.T) {
	s, err := NewLevenbergMarquardt()
	require.NoError(t, err)

	want, err := s.Solve(langmuirProblem())
	require.NoError(t, err)
	assert.Equal(t, "StepConvergence", want.Status)

	const workers = 8
	results := make([]Solution, workers)
	failures := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], failures[i] = s.Solve(langmuirProblem())
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, failures[i])
		assert.Equal(t, want.X, results[i].X)
		assert.Equal(t, want.Evaluations, results[i].Evaluations)
	}
}
