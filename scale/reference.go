package scale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/isofit/errs"
)

// Reference holds the three reference scales of a data set.
//
// A zero field in an override Reference passed to Resolve means "derive the
// scale from the data".
type Reference struct {
	// Fugacity is f_ref, in the same unit as the raw fugacity or pressure.
	Fugacity float64 `json:"fugacity"`
	// Loading is q_ref, in the same unit as the raw loading.
	Loading float64 `json:"loading"`
	// Temperature is T_ref, in Kelvin.
	Temperature float64 `json:"temperature"`
}

// Validate checks that every scale is strictly positive and finite.
func (r Reference) Validate() error {
	if err := checkScale("fugacity", r.Fugacity); err != nil {
		return err
	}
	if err := checkScale("loading", r.Loading); err != nil {
		return err
	}

	return checkScale("temperature", r.Temperature)
}

func checkScale(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s reference %g: %w", name, v, errs.ErrDegenerateScale)
	}

	return nil
}

// Resolve computes the reference scales for the given raw data.
//
// Parameters:
//   - override: explicit scales, zero fields are derived from the data
//   - fugacities: one sequence per component (one for unary data, two for binary data)
//   - loading: adsorbed loading of the own component
//   - temperature: temperature of each state point in Kelvin
//
// Returns:
//   - Reference: the resolved scales, all strictly positive
//   - error: errs.ErrInputShape when sequences are empty or of different length,
//     errs.ErrInvalidValue for negative or non-finite data, and
//     errs.ErrDegenerateScale when a scale resolves to a non-positive value
func Resolve(override Reference, fugacities [][]float64, loading, temperature []float64) (Reference, error) {
	n := len(loading)
	if n == 0 {
		return Reference{}, fmt.Errorf("no state points: %w", errs.ErrInputShape)
	}
	if len(fugacities) == 0 {
		return Reference{}, fmt.Errorf("no fugacity sequence: %w", errs.ErrInputShape)
	}
	if len(temperature) != n {
		return Reference{}, fmt.Errorf("temperature has %d values, loading has %d: %w", len(temperature), n, errs.ErrInputShape)
	}
	for c, f := range fugacities {
		if len(f) != n {
			return Reference{}, fmt.Errorf("fugacity %d has %d values, loading has %d: %w", c, len(f), n, errs.ErrInputShape)
		}
		if err := checkValues("fugacity", f); err != nil {
			return Reference{}, err
		}
	}
	if err := checkValues("loading", loading); err != nil {
		return Reference{}, err
	}
	if err := checkValues("temperature", temperature); err != nil {
		return Reference{}, err
	}
	for i, t := range temperature {
		if t == 0 {
			return Reference{}, fmt.Errorf("temperature[%d] is zero: %w", i, errs.ErrInvalidValue)
		}
	}

	ref := Reference{
		Fugacity:    override.Fugacity,
		Loading:     override.Loading,
		Temperature: override.Temperature,
	}
	if ref.Fugacity == 0 {
		for _, f := range fugacities {
			ref.Fugacity = math.Max(ref.Fugacity, floats.Max(f))
		}
	}
	if ref.Loading == 0 {
		ref.Loading = floats.Max(loading)
	}
	if ref.Temperature == 0 {
		ref.Temperature = floats.Max(temperature)
	}

	if err := ref.Validate(); err != nil {
		return Reference{}, err
	}

	return ref, nil
}

func checkValues(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s[%d] = %g: %w", name, i, v, errs.ErrInvalidValue)
		}
	}

	return nil
}

// ScaleFugacity returns f / f_ref for every value.
func (r Reference) ScaleFugacity(f []float64) []float64 {
	return divide(f, r.Fugacity)
}

// ScaleLoading returns q / q_ref for every value.
func (r Reference) ScaleLoading(q []float64) []float64 {
	return divide(q, r.Loading)
}

// ScaleTemperature returns T / T_ref for every value.
func (r Reference) ScaleTemperature(t []float64) []float64 {
	return divide(t, r.Temperature)
}

// divide returns a new slice holding values scaled by 1/s.
func divide(values []float64, s float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	floats.Scale(1/s, out)

	return out
}
