package isotherm

import (
	"fmt"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/statepoint"
)

// CombineUnary seeds a binary Langmuir model from two solved unary Langmuir
// models by direct assignment.
//
// The own-component parameters (H_i_star, A_i, q_mi_star) are copied from
// own, and the companion parameters (H_j_star, A_j) from the H_i_star and A_i
// of companion. Values are not rescaled between the reference scales of the
// three data sets. The binary model is left unsolved and every parameter
// stays free in its next solve.
//
// Parameters:
//   - binary: The binary Langmuir model to seed
//   - own: Solved unary Langmuir model of component i
//   - companion: Solved unary Langmuir model of component j
//
// Returns:
//   - error: errs.ErrIncompatibleModel for models of the wrong type,
//     errs.ErrNotSolved when a unary model has not been solved
func CombineUnary(binary, own, companion *Model) error {
	if binary == nil || binary.Type() != ModelTypeBinaryLangmuir {
		return fmt.Errorf("combining rule needs a %s target: %w", ModelTypeBinaryLangmuir, errs.ErrIncompatibleModel)
	}
	for _, u := range []*Model{own, companion} {
		if u == nil || u.Type() != ModelTypeLangmuir {
			return fmt.Errorf("combining rule needs %s sources: %w", ModelTypeLangmuir, errs.ErrIncompatibleModel)
		}
		if !u.Solved() {
			return fmt.Errorf("combining rule source: %w", errs.ErrNotSolved)
		}
	}

	ownParams := own.Parameters()
	compParams := companion.Parameters()

	return binary.SetParameters([]float64{
		ownParams[0], // H_i_star
		ownParams[1], // A_i
		ownParams[2], // q_mi_star
		compParams[0],
		compParams[1],
	})
}

// NewBinaryFromUnary creates a binary Langmuir model of data seeded by
// CombineUnary.
func NewBinaryFromUnary(data *statepoint.Set, own, companion *Model) (*Model, error) {
	m, err := NewModel(BinaryLangmuir{}, data)
	if err != nil {
		return nil, err
	}
	if err := CombineUnary(m, own, companion); err != nil {
		return nil, err
	}

	return m, nil
}
