package taylor_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-special/ndarray"
	"github.com/cwbudde/algo-special/series"
	"github.com/cwbudde/algo-special/taylor"
)

func ExampleSin() {
	fmt.Printf("%.6f %.6f\n", taylor.Sin(math.Pi/6), taylor.Sin(math.Pi/6, series.WithTerms(2)))
	// Output:
	// 0.500000 0.499674
}

func ExampleTanArray() {
	out := taylor.TanArray(ndarray.Vector(0, math.Pi/4, math.Pi/2))
	fmt.Printf("%.4f %.4f %v\n", out.Data()[0], out.Data()[1], out.Data()[2])
	// Output:
	// 0.0000 1.0000 NaN
}

func ExampleExpArray() {
	x, _ := ndarray.FromSlice([]float64{0, 1, 2, 3}, 2, 2)
	out := taylor.ExpArray(x)
	d := out.Data()
	fmt.Println(out.Shape())
	fmt.Printf("%.4f %.4f %.4f %.4f\n", d[0], d[1], d[2], d[3])
	// Output:
	// [2 2]
	// 1.0000 2.7183 7.3891 20.0855
}
