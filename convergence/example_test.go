package convergence_test

import (
	"fmt"
	"math"

	"github.com/quadview/quadview/convergence"
	"github.com/quadview/quadview/quadrature"
	"github.com/quadview/quadview/refquad"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAnalyze
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sweep all three rules over a doubling subdivision schedule for
//	∫₀^π sin(x) dx = 2. On a smooth integrand Simpson's fourth-order
//	convergence wins every position, and its final EOC sits near 4.
//
// Complexity: O(|methods| · Σ nᵢ) samples + one reference integration.
func ExampleAnalyze() {
	report, err := convergence.Analyze(math.Sin, 0, math.Pi,
		quadrature.Methods(), []int{8, 16, 32, 64},
		refquad.NewGaussLegendre())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	entries := report.Results[quadrature.Simpson]
	finalEOC := *entries[len(entries)-1].EOC

	fmt.Println("winner:", report.Winner)
	fmt.Printf("simpson wins: %d of %d\n", report.Wins[quadrature.Simpson], len(entries))
	fmt.Printf("simpson final EOC near 4: %t\n", math.Abs(finalEOC-4) < 0.5)
	fmt.Printf("reference near 2: %t\n", math.Abs(report.Reference-2) < 1e-9)
	// Output:
	// winner: simpson
	// simpson wins: 4 of 4
	// simpson final EOC near 4: true
	// reference near 2: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEOC
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	An error that drops from 0.1 to 0.025 while n doubles from 4 to 8 has
//	quartered — the signature of a second-order rule.
func ExampleEOC() {
	eoc, ok := convergence.EOC(0.1, 0.025, 4, 8)
	fmt.Printf("eoc=%.2f defined=%t\n", eoc, ok)

	// A zero error makes the logarithm meaningless: undefined, not 0.
	_, ok = convergence.EOC(0, 0.025, 4, 8)
	fmt.Printf("defined=%t\n", ok)
	// Output:
	// eoc=2.00 defined=true
	// defined=false
}
