package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-ephys/dsp/conv"
)

func ExampleDirect() {
	out, _ := conv.Direct([]float64{1, 2, 3}, []float64{1, -1})
	fmt.Println(out)

	// Output:
	// [1 1 1 -3]
}

func ExampleKernel() {
	haarLow, _ := conv.NewKernel([]float64{0.5, 0.5})

	out, _ := haarLow.Apply([]float64{2, 4, 6, 8})
	fmt.Println(out, haarLow.UsesFFT())

	// Output:
	// [1 3 5 7 4] false
}
