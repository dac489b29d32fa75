package isotherm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/isofit/errs"
)

func checkPaired(observed, calculated []float64) error {
	if len(observed) == 0 {
		return fmt.Errorf("no observations: %w", errs.ErrInputShape)
	}
	if len(observed) != len(calculated) {
		return fmt.Errorf("%d observations, %d calculated values: %w", len(observed), len(calculated), errs.ErrInputShape)
	}

	return nil
}

// SumSquaredResiduals returns Σ (observed - calculated)², the fit objective.
//
// Parameters:
//   - observed: Empirical dimensionless loadings
//   - calculated: Model dimensionless loadings at the same points
//
// Returns:
//   - float64: Sum of squared residuals
//   - error: errs.ErrInputShape if the slices are empty or differ in length
func SumSquaredResiduals(observed, calculated []float64) (float64, error) {
	if err := checkPaired(observed, calculated); err != nil {
		return 0, err
	}

	ssRes := 0.0
	for i := range observed {
		d := observed[i] - calculated[i]
		ssRes += d * d
	}

	return ssRes, nil
}

// RSquared calculates the coefficient of determination 1 - SS_res/SS_tot.
//
// SS_tot is taken over every observation, regardless of which subset a point
// belongs to. The result never exceeds 1 and equals 1 only for an exact fit.
//
// Returns:
//   - float64: R²
//   - error: errs.ErrDegenerateMetric when all observations are equal,
//     errs.ErrInputShape for empty or mismatched slices
func RSquared(observed, calculated []float64) (float64, error) {
	ssRes, err := SumSquaredResiduals(observed, calculated)
	if err != nil {
		return 0, err
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	for _, v := range observed {
		ssTot += (v - mean) * (v - mean)
	}

	if ssTot == 0 {
		return 0, fmt.Errorf("total sum of squares is zero: %w", errs.ErrDegenerateMetric)
	}

	return 1.0 - ssRes/ssTot, nil
}

// RMSE calculates the root mean square error of the residuals.
func RMSE(observed, calculated []float64) (float64, error) {
	ssRes, err := SumSquaredResiduals(observed, calculated)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(ssRes / float64(len(observed))), nil
}
