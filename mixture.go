package isofit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/isofit/dataset"
	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/isotherm"
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/solver"
	"github.com/arloliu/isofit/statepoint"
)

// Component holds the raw columns of one adsorbing species.
type Component struct {
	Name     string
	Fugacity []float64
	Loading  []float64
}

// MixtureData is a binary adsorption data set: every row gives the
// fugacities and loadings of both components at one temperature.
type MixtureData struct {
	A           Component
	B           Component
	Temperature []float64
	// Reference overrides the scales of every set built from the data.
	Reference scale.Reference
}

// MixtureResult holds the four models of a mixture fit. UnaryA and BinaryA
// describe the loading of component A.
type MixtureResult struct {
	UnaryA  *isotherm.Model
	UnaryB  *isotherm.Model
	BinaryA *isotherm.Model
	BinaryB *isotherm.Model
}

// Models returns the models in the order UnaryA, UnaryB, BinaryA, BinaryB.
func (r *MixtureResult) Models() []*isotherm.Model {
	return []*isotherm.Model{r.UnaryA, r.UnaryB, r.BinaryA, r.BinaryB}
}

// FitMixture fits both components of a binary mixture.
//
// For each component, rows with non-positive own loading are dropped and
// the remaining rows form the binary data set. Its unary subset, the rows
// where the companion fugacity is negligible, is fitted with the unary
// Langmuir model. Both binary Langmuir models are then seeded from the two
// unary fits by the combining rule and solved.
//
// Independent solves run concurrently.
//
// Parameters:
//   - data: Raw mixture columns
//   - s: The solver, nil selects DefaultSolver
//   - opts: Fit options applied to all four solves
//
// Returns:
//   - *MixtureResult: The solved models
//   - error: An input error, or the joined solve errors
func FitMixture(data MixtureData, s solver.Solver, opts ...isotherm.FitOption) (*MixtureResult, error) {
	if s == nil {
		def, err := DefaultSolver()
		if err != nil {
			return nil, err
		}
		s = def
	}

	setA, err := componentSet(data.A, data.B, data.Temperature, data.Reference)
	if err != nil {
		return nil, err
	}
	setB, err := componentSet(data.B, data.A, data.Temperature, data.Reference)
	if err != nil {
		return nil, err
	}

	res := &MixtureResult{}
	if res.UnaryA, err = unaryModel(data.A.Name, setA, data.Reference); err != nil {
		return nil, err
	}
	if res.UnaryB, err = unaryModel(data.B.Name, setB, data.Reference); err != nil {
		return nil, err
	}
	if err := SolveAll(s, []*isotherm.Model{res.UnaryA, res.UnaryB}, opts...); err != nil {
		return nil, fmt.Errorf("unary fits: %w", err)
	}

	if res.BinaryA, err = isotherm.NewBinaryFromUnary(setA, res.UnaryA, res.UnaryB); err != nil {
		return nil, err
	}
	if res.BinaryB, err = isotherm.NewBinaryFromUnary(setB, res.UnaryB, res.UnaryA); err != nil {
		return nil, err
	}
	if err := SolveAll(s, []*isotherm.Model{res.BinaryA, res.BinaryB}, opts...); err != nil {
		return res, fmt.Errorf("binary fits: %w", err)
	}

	return res, nil
}

func componentSet(own, companion Component, temperature []float64, override scale.Reference) (*statepoint.Set, error) {
	n := len(own.Loading)
	if len(own.Fugacity) != n || len(companion.Fugacity) != n || len(temperature) != n {
		return nil, fmt.Errorf("component %s: column lengths %d/%d/%d/%d differ: %w",
			own.Name, len(own.Fugacity), len(companion.Fugacity), n, len(temperature), errs.ErrInputShape)
	}

	idx := dataset.PositiveIndices(own.Loading)
	if len(idx) == 0 {
		return nil, fmt.Errorf("component %s has no positive loading: %w", own.Name, errs.ErrInputShape)
	}

	set, err := statepoint.NewBinary(
		dataset.Select(own.Fugacity, idx),
		dataset.Select(companion.Fugacity, idx),
		dataset.Select(own.Loading, idx),
		dataset.Select(temperature, idx),
		override,
	)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", own.Name, err)
	}

	return set, nil
}

func unaryModel(name string, set *statepoint.Set, override scale.Reference) (*isotherm.Model, error) {
	idx := set.UnarySubset()
	if len(idx) == 0 {
		return nil, fmt.Errorf("component %s has no unary points: %w", name, errs.ErrInputShape)
	}
	unary, err := set.Subset(idx, override)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}

	return isotherm.NewModel(isotherm.UnaryLangmuir{}, unary)
}

// SolveAll solves independent models concurrently with the same solver and
// options. The solver must be safe for concurrent use, as solver.Minimizer
// and solver.LevenbergMarquardt are.
//
// Every model is attempted. The returned error joins the failures, each
// wrapped with the index of its model.
func SolveAll(s solver.Solver, models []*isotherm.Model, opts ...isotherm.FitOption) error {
	if s == nil {
		return errs.ErrNilSolver
	}

	failures := make([]error, len(models))
	var wg sync.WaitGroup
	for i, m := range models {
		if m == nil {
			failures[i] = fmt.Errorf("model %d: %w", i, errs.ErrUnfittedModel)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Solve(s, opts...); err != nil {
				failures[i] = fmt.Errorf("model %d (%s): %w", i, m.Type(), err)
			}
		}()
	}
	wg.Wait()

	return errors.Join(failures...)
}
