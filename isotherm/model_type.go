package isotherm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/isofit/errs"
)

// ModelType identifies an isotherm variant.
type ModelType int

const (
	// ModelTypeLangmuir is the temperature-dependent unary Langmuir isotherm:
	// θ = q*_m K / (1 + K), K = exp(A - H*/T*) f*
	ModelTypeLangmuir ModelType = iota
	// ModelTypeBinaryLangmuir is the competitive binary Langmuir isotherm:
	// θ_i = q*_mi K_i / (1 + K_i + K_j)
	ModelTypeBinaryLangmuir
	// ModelTypeBET is the BET isotherm: q = M k1 c / ((1 - k2 c)(1 + k1 c - k2 c))
	ModelTypeBET
	// ModelTypeQuadratic is the quadratic isotherm: q = M (k1 + 2 k2 c) c / (1 + k1 c + k2 c²)
	ModelTypeQuadratic
	// ModelTypeDualSite is the dual-site Langmuir isotherm: q = M1 k1 c / (1 + k1 c) + M2 k2 c / (1 + k2 c)
	ModelTypeDualSite
	// ModelTypeDualSiteQuadratic is the sum of two quadratic sites.
	ModelTypeDualSiteQuadratic
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLangmuir:          "langmuir",
	ModelTypeBinaryLangmuir:    "binary-langmuir",
	ModelTypeBET:               "bet",
	ModelTypeQuadratic:         "quadratic",
	ModelTypeDualSite:          "dual-site",
	ModelTypeDualSiteQuadratic: "dual-site-quadratic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

var modelTypeFromString = map[string]ModelType{
	"langmuir":            ModelTypeLangmuir,
	"binary-langmuir":     ModelTypeBinaryLangmuir,
	"bet":                 ModelTypeBET,
	"quadratic":           ModelTypeQuadratic,
	"dual-site":           ModelTypeDualSite,
	"dual-site-quadratic": ModelTypeDualSiteQuadratic,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

// SupportedModels returns the sorted names of all isotherm variants.
func SupportedModels() []string {
	names := make([]string, 0, len(modelTypeFromString))
	for name := range modelTypeFromString {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// NewExpression creates the expression of the named isotherm variant.
//
// Parameters:
//   - name: Model name (langmuir, binary-langmuir, bet, quadratic, dual-site, dual-site-quadratic)
//
// Returns:
//   - Expression: The isotherm expression
//   - error: errs.ErrUnknownModelType if the name is not supported
func NewExpression(name string) (Expression, error) {
	expr := newExpression(ModelTypeFromString(name))
	if expr == nil {
		return nil, fmt.Errorf("%q, supported: %s: %w", name, strings.Join(SupportedModels(), ", "), errs.ErrUnknownModelType)
	}

	return expr, nil
}

func newExpression(mt ModelType) Expression {
	switch mt {
	case ModelTypeLangmuir:
		return UnaryLangmuir{}
	case ModelTypeBinaryLangmuir:
		return BinaryLangmuir{}
	case ModelTypeBET:
		return BET{}
	case ModelTypeQuadratic:
		return Quadratic{}
	case ModelTypeDualSite:
		return DualSite{}
	case ModelTypeDualSiteQuadratic:
		return DualSiteQuadratic{}
	default:
		return nil
	}
}
