package statepoint

import (
	"fmt"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/hash"
	"github.com/arloliu/isofit/scale"
)

// NegligibleFugacity is the companion fugacity, in raw units, below which a
// binary state point is treated as single-component.
const NegligibleFugacity = 1e-12

// Conditions describes the independent variables of one state point.
//
// Pure is true when the companion term is absent from the isotherm at this
// point, which holds for every point of a unary set and for the unary subset
// of a binary set.
type Conditions struct {
	OwnFugacity       float64
	CompanionFugacity float64
	Temperature       float64
	Pure              bool
}

// Set is an immutable collection of state points.
type Set struct {
	binary bool
	ref    scale.Reference

	// raw data
	ownF  []float64
	compF []float64
	q     []float64
	temp  []float64

	// dimensionless data
	ownFStar  []float64
	compFStar []float64
	theta     []float64
	tempStar  []float64

	pure []bool
}

// NewUnary creates a single-component set.
//
// Parameters:
//   - f: fugacity or pressure of each point
//   - q: loading of each point
//   - t: temperature of each point in Kelvin
//   - override: explicit reference scales, zero fields default to the data maxima
//
// Returns:
//   - *Set: the new set
//   - error: errs.ErrInputShape, errs.ErrInvalidValue or errs.ErrDegenerateScale
func NewUnary(f, q, t []float64, override scale.Reference) (*Set, error) {
	return newSet(false, f, make([]float64, len(f)), q, t, override)
}

// NewBinary creates a two-component set modeling the loading of component i.
//
// Parameters:
//   - fi: own-component fugacity of each point
//   - fj: companion fugacity of each point
//   - q: own-component loading of each point
//   - t: temperature of each point in Kelvin
//   - override: explicit reference scales, zero fields default to the data maxima
//
// The default fugacity reference is the maximum across fi and fj.
func NewBinary(fi, fj, q, t []float64, override scale.Reference) (*Set, error) {
	if len(fj) != len(fi) {
		return nil, fmt.Errorf("companion fugacity has %d values, own fugacity has %d: %w", len(fj), len(fi), errs.ErrInputShape)
	}

	return newSet(true, fi, fj, q, t, override)
}

func newSet(binary bool, fi, fj, q, t []float64, override scale.Reference) (*Set, error) {
	fugacities := [][]float64{fi}
	if binary {
		fugacities = append(fugacities, fj)
	}

	ref, err := scale.Resolve(override, fugacities, q, t)
	if err != nil {
		return nil, err
	}

	s := &Set{
		binary: binary,
		ref:    ref,
		ownF:   clone(fi),
		compF:  clone(fj),
		q:      clone(q),
		temp:   clone(t),
		pure:   make([]bool, len(q)),
	}
	s.ownFStar = ref.ScaleFugacity(s.ownF)
	s.compFStar = ref.ScaleFugacity(s.compF)
	s.theta = ref.ScaleLoading(s.q)
	s.tempStar = ref.ScaleTemperature(s.temp)

	for i, v := range s.compF {
		s.pure[i] = !binary || v < NegligibleFugacity
	}

	return s, nil
}

// WithReference returns a copy of the set normalized with new reference scales.
// Zero fields of override default to the data maxima.
func (s *Set) WithReference(override scale.Reference) (*Set, error) {
	return newSet(s.binary, s.ownF, s.compF, s.q, s.temp, override)
}

// Subset returns a new set holding the given points. Reference scales are
// resolved again from the selected data unless override sets them.
func (s *Set) Subset(indices []int, override scale.Reference) (*Set, error) {
	fi := make([]float64, 0, len(indices))
	fj := make([]float64, 0, len(indices))
	q := make([]float64, 0, len(indices))
	t := make([]float64, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.q) {
			return nil, fmt.Errorf("index %d out of range [0, %d): %w", idx, len(s.q), errs.ErrInputShape)
		}
		fi = append(fi, s.ownF[idx])
		fj = append(fj, s.compF[idx])
		q = append(q, s.q[idx])
		t = append(t, s.temp[idx])
	}

	return newSet(s.binary, fi, fj, q, t, override)
}

// Len returns the number of state points.
func (s *Set) Len() int {
	return len(s.q)
}

// Binary reports whether the set carries a companion component.
func (s *Set) Binary() bool {
	return s.binary
}

// Reference returns the resolved reference scales.
func (s *Set) Reference() scale.Reference {
	return s.ref
}

// Point returns the dimensionless conditions of point i.
func (s *Set) Point(i int) Conditions {
	return Conditions{
		OwnFugacity:       s.ownFStar[i],
		CompanionFugacity: s.compFStar[i],
		Temperature:       s.tempStar[i],
		Pure:              s.pure[i],
	}
}

// RawPoint returns the conditions of point i in raw units.
func (s *Set) RawPoint(i int) Conditions {
	return Conditions{
		OwnFugacity:       s.ownF[i],
		CompanionFugacity: s.compF[i],
		Temperature:       s.temp[i],
		Pure:              s.pure[i],
	}
}

// IsUnary reports whether point i belongs to the unary subset.
func (s *Set) IsUnary(i int) bool {
	return s.pure[i]
}

// UnarySubset returns the indices of points whose companion term is absent.
// For a unary set this is every point.
func (s *Set) UnarySubset() []int {
	return s.indices(true)
}

// MixtureSubset returns the indices of binary points with a non-negligible
// companion fugacity.
func (s *Set) MixtureSubset() []int {
	return s.indices(false)
}

func (s *Set) indices(pure bool) []int {
	out := make([]int, 0, len(s.pure))
	for i, p := range s.pure {
		if p == pure {
			out = append(out, i)
		}
	}

	return out
}

// Theta returns a copy of the dimensionless loading θ = q / q_ref.
func (s *Set) Theta() []float64 { return clone(s.theta) }

// Loading returns a copy of the raw loading.
func (s *Set) Loading() []float64 { return clone(s.q) }

// OwnFugacity returns a copy of the raw own-component fugacity.
func (s *Set) OwnFugacity() []float64 { return clone(s.ownF) }

// CompanionFugacity returns a copy of the raw companion fugacity.
// It is all zeros for a unary set.
func (s *Set) CompanionFugacity() []float64 { return clone(s.compF) }

// Temperature returns a copy of the raw temperature.
func (s *Set) Temperature() []float64 { return clone(s.temp) }

// ThetaAt returns the dimensionless loading of point i.
func (s *Set) ThetaAt(i int) float64 { return s.theta[i] }

// Fingerprint returns a hash of the raw data, stable across runs.
func (s *Set) Fingerprint() uint64 {
	return hash.Floats(s.ownF, s.compF, s.q, s.temp)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
