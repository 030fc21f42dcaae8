package robust_test

import (
	"fmt"

	"github.com/cwbudde/algo-ephys/stats/robust"
)

func ExampleNormalize() {
	out, s, err := robust.Normalize([]float64{1, 2, 3, 4, 5})
	if err != nil {
		panic(err)
	}

	fmt.Printf("center=%.1f mad=%.1f first=%.3f\n", s.Center, s.Dispersion, out[0])

	// Output:
	// center=3.0 mad=1.2 first=-1.667
}
