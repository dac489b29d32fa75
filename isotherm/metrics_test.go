package isotherm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/isofit/errs"
)

func TestRSquared(t *testing.T) {
	observed := []float64{0.1, 0.4, 0.7, 0.9, 1.0}

	r2, err := RSquared(observed, observed)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r2)

	calculated := []float64{0.12, 0.38, 0.71, 0.88, 1.01}
	r2, err = RSquared(observed, calculated)
	require.NoError(t, err)
	assert.Less(t, r2, 1.0)
	assert.InDelta(t, stat.RSquaredFrom(calculated, observed, nil), r2, 1e-12)

	// a model worse than the mean gives a negative value, never above 1
	r2, err = RSquared(observed, []float64{1, 0, 1, 0, 1})
	require.NoError(t, err)
	assert.Negative(t, r2)
}

func TestRSquaredDegenerate(t *testing.T) {
	_, err := RSquared([]float64{0.5, 0.5, 0.5}, []float64{0.4, 0.5, 0.6})
	require.ErrorIs(t, err, errs.ErrDegenerateMetric)

	_, err = RSquared(nil, nil)
	require.ErrorIs(t, err, errs.ErrInputShape)

	_, err = RSquared([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, errs.ErrInputShape)
}

func TestSumSquaredResidualsAndRMSE(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	calculated := []float64{1, 3, 3, 2}

	ssr, err := SumSquaredResiduals(observed, calculated)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ssr)

	rmse, err := RMSE(observed, calculated)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/4), rmse, 1e-15)
}
