// Package convergence defines the report value objects and sentinel errors
// for the convergence analyzer.
package convergence

import (
	"errors"

	"github.com/quadview/quadview/quadrature"
)

// Sentinel errors for convergence analysis.
var (
	// ErrNoMethods indicates the method set is empty.
	ErrNoMethods = errors.New("convergence: at least one method is required")
	// ErrNoSubdivisions indicates the subdivision sweep is empty.
	ErrNoSubdivisions = errors.New("convergence: at least one subdivision count is required")
	// ErrNilIntegrator indicates no reference integrator was supplied.
	ErrNilIntegrator = errors.New("convergence: reference integrator must be non-nil")
)

// ErrorPair bundles the two error metrics derived from one approximation
// and the shared reference value.
type ErrorPair struct {
	// Absolute is |approx − reference|.
	Absolute float64 `json:"absolute_error"`
	// Relative is Absolute/|reference|, with the zero-reference policy:
	// when reference == 0 it equals Absolute (or 0 if both are 0), so a
	// nonzero discrepancy against a zero reference stays visible without
	// dividing by zero.
	Relative float64 `json:"relative_error"`
}

// Entry is one (n, h, approximation, errors, EOC) row of a rule's sweep.
// EOC is nil for the first row and whenever the logarithmic ratio is
// undefined — an absent value, distinct from 0 and from NaN.
type Entry struct {
	N             int      `json:"n"`
	H             float64  `json:"h"`
	Approximation float64  `json:"approx"`
	AbsError      float64  `json:"abs_error"`
	RelError      float64  `json:"rel_error"`
	EOC           *float64 `json:"eoc"`
}

// Report aggregates one full convergence analysis. It is a plain value:
// built fresh per Analyze call, fully owned by the caller afterwards.
//
// Winner is the method with the most per-n wins; ties fall back to the
// smallest absolute error at the largest n, then to the lexicographically
// smallest method name (deterministic by construction).
type Report struct {
	// Reference is the shared high-accuracy integral value.
	Reference float64 `json:"exact_value"`
	// ReferenceEstimate is the oracle's own error bound on Reference.
	ReferenceEstimate float64 `json:"exact_error_estimate"`
	// Results holds, per method, the sweep entries in ascending-n order.
	Results map[quadrature.Method][]Entry `json:"results"`
	// Winner is the overall best method (see type doc for tie-breaking).
	Winner quadrature.Method `json:"winner"`
	// Wins counts, per method, the positions at which it achieved the
	// minimum absolute error. Exact ties credit every tied method.
	Wins map[quadrature.Method]int `json:"win_counts"`
	// Improvements maps each non-winning method to
	// finalError(method)/finalError(winner). Empty when the winner's
	// final error is not strictly positive.
	Improvements map[quadrature.Method]float64 `json:"improvements"`
}
