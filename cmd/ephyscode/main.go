// Command ephyscode codes electrophysiology recordings as sparse wavelet
// coefficients.
//
// Usage:
//
//	ephyscode run --config cfg.yaml --out results.db <dir | file...>
//	ephyscode basis --family db3 --resolution 64 --points 100
//	ephyscode families
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
