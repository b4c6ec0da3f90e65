// Package lstsq_test provides benchmarks for both least-squares methods
// on tall random systems.
package lstsq_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
)

var sinkX matrix.Matrix

func BenchmarkSolve(b *testing.B) {
	shapes := [][2]int{{50, 5}, {200, 10}, {500, 20}}
	for _, m := range []lstsq.Method{lstsq.MethodQR, lstsq.MethodNormal} {
		for _, shape := range shapes {
			b.Run(fmt.Sprintf("%s/%dx%d", m, shape[0], shape[1]), func(b *testing.B) {
				rng := rand.New(rand.NewSource(1))
				A := randDense(b, shape[0], shape[1], rng)
				rhs := randDense(b, shape[0], 1, rng)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					x, err := lstsq.Solve(A, rhs, m)
					if err != nil {
						b.Fatal(err)
					}
					sinkX = x
				}
			})
		}
	}
}
