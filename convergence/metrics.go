package convergence

import (
	"math"

	"github.com/quadview/quadview/quadrature"
)

// Errors computes the absolute and relative error of approx against
// reference. It never fails: the zero-reference case degrades to the
// absolute error (or 0 when both agree exactly) instead of dividing by
// zero. See ErrorPair for the policy details.
func Errors(approx, reference float64) ErrorPair {
	abs := math.Abs(approx - reference)

	var rel float64
	switch {
	case reference != 0:
		rel = abs / math.Abs(reference)
	case abs != 0:
		rel = abs
	}

	return ErrorPair{Absolute: abs, Relative: rel}
}

// EOC computes the Experimental Order of Convergence between two
// consecutive sweep entries of the same rule:
//
//	EOC = ln(errPrev / errCurr) / ln(nCurr / nPrev)
//
// The result is undefined (ok=false) when either error is ≤ 0 or not
// finite, either n is ≤ 0, or the two n values coincide — the guards that
// keep both logarithms and the division well-defined.
func EOC(errPrev, errCurr float64, nPrev, nCurr int) (eoc float64, ok bool) {
	if errPrev <= 0 || errCurr <= 0 || nPrev <= 0 || nCurr <= 0 || nCurr == nPrev {
		return 0, false
	}
	if math.IsNaN(errPrev) || math.IsInf(errPrev, 0) || math.IsNaN(errCurr) || math.IsInf(errCurr, 0) {
		return 0, false
	}

	return math.Log(errPrev/errCurr) / math.Log(float64(nCurr)/float64(nPrev)), true
}

// TheoreticalOrder returns the textbook convergence order of a rule on
// sufficiently smooth integrands: 2 for trapezoidal and midpoint, 4 for
// Simpson. Unknown methods report 0.
func TheoreticalOrder(m quadrature.Method) float64 {
	switch m {
	case quadrature.Trapezoidal, quadrature.Midpoint:
		return 2
	case quadrature.Simpson:
		return 4
	default:
		return 0
	}
}
