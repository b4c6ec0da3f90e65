// SPDX-License-Identifier: MIT
package lstsq_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
)

// ExampleSolveQR fits the reference 5×3 system with both methods.
func ExampleSolveQR() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{3, 4, 5},
		{6, 1, 2},
		{2, 3, 0},
		{1, 1, 1},
		{2, 4, 6},
	})
	b, _ := matrix.NewColumn([]float64{1, 2, 3, 4, 5})

	xq, residual, _ := lstsq.SolveQRWithResidual(a, b)
	xn, _ := lstsq.SolveNormal(a, b)

	for _, x := range []matrix.Matrix{xq, xn} {
		col, _ := matrix.Column(x, 0)
		fmt.Printf("x = [%.6f %.6f %.6f]\n", col[0], col[1], col[2])
	}
	fmt.Printf("‖Ax − b‖ = %.6f\n", residual)

	// Output:
	// x = [0.179945 0.793921 -0.022910]
	// x = [0.179945 0.793921 -0.022910]
	// ‖Ax − b‖ = 4.327142
}

// ExampleSolve_rankDeficient shows the typed failure for dependent columns.
func ExampleSolve_rankDeficient() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}, {3, 6}})
	b, _ := matrix.NewColumn([]float64{1, 2, 3})

	_, err := lstsq.Solve(a, b, lstsq.MethodNormal)
	fmt.Println(errors.Is(err, lstsq.ErrSingular))

	// Output:
	// true
}

// ExamplePolyFit fits a straight line.
func ExamplePolyFit() {
	coeffs, _ := lstsq.PolyFit([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 1, lstsq.MethodQR)
	fmt.Printf("y = %.3f + %.3f·x\n", coeffs[0], coeffs[1])
	fmt.Printf("y(10) = %.3f\n", lstsq.PolyEval(coeffs, 10))

	// Output:
	// y = 1.000 + 2.000·x
	// y(10) = 21.000
}
