package isofit_test

import (
	"fmt"

	"github.com/arloliu/isofit"
	"github.com/arloliu/isofit/scale"
)

func ExampleFitUnaryLangmuir() {
	f := []float64{10, 50, 100, 200, 400}
	q := make([]float64, len(f))
	temp := make([]float64, len(f))
	for i := range f {
		q[i] = 2 * 0.01 * f[i] / (1 + 0.01*f[i])
		temp[i] = 300
	}

	model, err := isofit.FitUnaryLangmuir(f, q, temp, scale.Reference{})
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	r2, _ := model.RSquared()
	fmt.Printf("solved: %v, R² above 0.999: %v\n", model.Solved(), r2 > 0.999)

	// Output:
	// solved: true, R² above 0.999: true
}
