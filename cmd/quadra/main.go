// Package main provides the Quadra CLI.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/quadra-ml/quadra/backend/cpu"
	"github.com/quadra-ml/quadra/integrate"
	"github.com/quadra-ml/quadra/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Quadra %s\n", version)
			return
		case "selftest":
			selftest()
			return
		}
	}

	fmt.Println("Quadra - Numerical Integration over Tensors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  selftest   Integrate sin(x) over [0, pi] and print the result")
}

// selftest integrates sin over [0, pi] on a uniform grid. The exact
// answer is 2; the trapezoid estimate converges quadratically in the
// step size.
func selftest() {
	backend := cpu.New()
	const n = 1001

	x := tensor.Linspace[float64](0, math.Pi, n, backend)
	y := tensor.Zeros[float64](tensor.Shape{n}, backend)
	yData := y.Data()
	for i, v := range x.Data() {
		yData[i] = math.Sin(v)
	}

	area, err := integrate.Trapezoid(y, x, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "selftest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("trapezoid(sin, [0, pi], %d samples) = %.9f (exact 2)\n", n, area.Item())
}
