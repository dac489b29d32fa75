package solver

import (
	"math"
	"strings"
)

// Loss selects the robust loss function ρ applied to squared residuals.
type Loss int

const (
	// LossLinear is ρ(z) = z, ordinary least squares.
	LossLinear Loss = iota
	// LossSoftL1 is ρ(z) = 2(sqrt(1+z) - 1), a smooth approximation of the L1 loss.
	LossSoftL1
	// LossHuber is ρ(z) = z for z <= 1 and 2sqrt(z) - 1 otherwise.
	LossHuber
	// LossCauchy is ρ(z) = ln(1 + z).
	LossCauchy
	// LossArctan is ρ(z) = arctan(z).
	LossArctan
)

// DefaultLoss is the loss used when a problem does not choose one.
const DefaultLoss = LossSoftL1

var lossNames = map[Loss]string{
	LossLinear: "linear",
	LossSoftL1: "soft_l1",
	LossHuber:  "huber",
	LossCauchy: "cauchy",
	LossArctan: "arctan",
}

// String returns the string representation of the loss.
func (l Loss) String() string {
	if name, exists := lossNames[l]; exists {
		return name
	}

	return "unknown"
}

var lossFromString = map[string]Loss{
	"linear":  LossLinear,
	"soft_l1": LossSoftL1,
	"huber":   LossHuber,
	"cauchy":  LossCauchy,
	"arctan":  LossArctan,
}

// LossFromString returns the Loss for a given name.
// Returns Loss(-1) for unknown names.
func LossFromString(name string) Loss {
	if l, exists := lossFromString[strings.ToLower(name)]; exists {
		return l
	}

	return Loss(-1)
}

// Rho evaluates the loss at z, a squared residual divided by the squared loss scale.
func (l Loss) Rho(z float64) float64 {
	switch l {
	case LossSoftL1:
		return 2 * (math.Sqrt(1+z) - 1)
	case LossHuber:
		if z <= 1 {
			return z
		}

		return 2*math.Sqrt(z) - 1
	case LossCauchy:
		return math.Log1p(z)
	case LossArctan:
		return math.Atan(z)
	default:
		return z
	}
}

func (l Loss) valid() bool {
	_, ok := lossNames[l]
	return ok
}
