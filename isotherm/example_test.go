package isotherm_test

import (
	"fmt"
	"log"
	"math"

	"github.com/arloliu/isofit/isotherm"
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/solver"
)

// ExampleModel_Solve fits a unary Langmuir isotherm to five points at 300 K.
func ExampleModel_Solve() {
	p := []float64{10, 50, 100, 200, 400}
	q := []float64{0.1818, 0.6647, 1.0020, 1.3280, 1.6048}
	T := []float64{300, 300, 300, 300, 300}

	m, err := isotherm.NewUnaryLangmuir(p, q, T, scale.Reference{})
	if err != nil {
		log.Fatal(err)
	}

	s, err := solver.NewMinimizer()
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Solve(s); err != nil {
		log.Fatal(err)
	}

	phys, err := m.Physical()
	if err != nil {
		log.Fatal(err)
	}
	r2, err := m.RSquared()
	if err != nil {
		log.Fatal(err)
	}

	params := m.Parameters()
	ref := m.Data().Reference()
	k300 := math.Exp(params[1]-params[0]) / ref.Fugacity

	fmt.Printf("%s = %.1f\n", phys[0].Name, phys[0].Value)
	fmt.Printf("k(300 K) = %.3f\n", k300)
	fmt.Printf("R² > 0.99: %v\n", r2 > 0.99)

	// Output:
	// q_mi = 2.0
	// k(300 K) = 0.010
	// R² > 0.99: true
}

// ExampleCombineUnary seeds a binary model from two unary fits.
func ExampleCombineUnary() {
	s, err := solver.NewMinimizer()
	if err != nil {
		log.Fatal(err)
	}

	T := []float64{300, 300, 300, 300}
	own, err := isotherm.NewUnaryLangmuir([]float64{10, 50, 100, 200}, []float64{0.5, 1.4, 1.9, 2.3}, T, scale.Reference{})
	if err != nil {
		log.Fatal(err)
	}
	companion, err := isotherm.NewUnaryLangmuir([]float64{10, 50, 100, 200}, []float64{0.2, 0.7, 1.1, 1.5}, T, scale.Reference{})
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range []*isotherm.Model{own, companion} {
		if err := m.Solve(s); err != nil {
			log.Fatal(err)
		}
	}

	binary, err := isotherm.NewBinaryLangmuir(
		[]float64{10, 50, 100, 0},
		[]float64{0, 50, 100, 100},
		[]float64{0.5, 1.1, 1.5, 0.001},
		[]float64{300, 300, 300, 300},
		scale.Reference{},
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := isotherm.CombineUnary(binary, own, companion); err != nil {
		log.Fatal(err)
	}

	ownCapacity, _ := own.Parameter("q_mi_star")
	seeded, _ := binary.Parameter("q_mi_star")
	fmt.Println(binary.ParameterNames())
	fmt.Println(seeded == ownCapacity, binary.Solved())

	// Output:
	// [H_i_star A_i q_mi_star H_j_star A_j]
	// true false
}
