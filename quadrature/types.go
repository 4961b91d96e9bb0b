// Package quadrature defines the Method enum, the Func capability and
// sentinel errors shared by the quadrature rules.
package quadrature

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for quadrature operations.
var (
	// ErrNilFunc indicates the integrand callable is nil.
	ErrNilFunc = errors.New("quadrature: integrand must be non-nil")
	// ErrInvalidInterval indicates a non-finite bound or a ≥ b.
	ErrInvalidInterval = errors.New("quadrature: interval bounds must be finite with a < b")
	// ErrBadSubdivisions indicates a subdivision count below 1.
	ErrBadSubdivisions = errors.New("quadrature: subdivision count must be at least 1")
	// ErrNonFiniteSample indicates the integrand returned NaN or ±Inf at a sample point.
	ErrNonFiniteSample = errors.New("quadrature: integrand returned a non-finite value")
	// ErrUnknownMethod indicates a Method value outside the closed enum.
	ErrUnknownMethod = errors.New("quadrature: unknown method")
)

// Func is the integrand capability: any real-valued function of one real
// variable. How it is obtained (named catalog, compiled expression, plain
// closure) is the caller's concern; the rules only ever call it.
type Func func(x float64) float64

// Method selects one of the three composite quadrature rules.
// It is a closed enum: Integrate dispatches over it exhaustively and
// rejects values outside the three constants with ErrUnknownMethod.
type Method int

const (
	// Trapezoidal connects consecutive samples with straight lines.
	// Exact for any polynomial of degree ≤ 1. Convergence order 2.
	Trapezoidal Method = iota
	// Midpoint uses flat rectangles evaluated at subinterval midpoints.
	// Convergence order 2, with roughly half the trapezoidal error constant.
	Midpoint
	// Simpson fits a parabola over each pair of subintervals.
	// Requires an even subdivision count (odd n is bumped to n+1).
	// Exact for degree ≤ 3. Convergence order 4.
	Simpson
)

// Methods returns all rules in registration order:
// Trapezoidal, Midpoint, Simpson.
func Methods() []Method {
	return []Method{Trapezoidal, Midpoint, Simpson}
}

// String returns the canonical lowercase name of the method.
func (m Method) String() string {
	switch m {
	case Trapezoidal:
		return "trapezoidal"
	case Midpoint:
		return "midpoint"
	case Simpson:
		return "simpson"
	default:
		return fmt.Sprintf("quadrature.Method(%d)", int(m))
	}
}

// ParseMethod maps a canonical method name back to its Method value.
// Returns ErrUnknownMethod for anything outside {trapezoidal, midpoint, simpson}.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "trapezoidal":
		return Trapezoidal, nil
	case "midpoint":
		return Midpoint, nil
	case "simpson":
		return Simpson, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// MarshalText implements encoding.TextMarshaler so Method renders as its
// canonical name in JSON objects and map keys.
func (m Method) MarshalText() ([]byte, error) {
	switch m {
	case Trapezoidal, Midpoint, Simpson:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of MarshalText.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Effective returns the subdivision count the method actually uses for a
// requested n: Simpson bumps an odd n to n+1, the other rules use n as-is.
// The adjustment is silent by contract — reported step sizes and
// visualization shape counts are derived from this value, never from the
// raw request.
func (m Method) Effective(n int) int {
	if m == Simpson && n%2 != 0 {
		return n + 1
	}

	return n
}

// StepSize returns h = (b-a) / Effective(n), the subinterval width the
// method actually integrates with.
func (m Method) StepSize(a, b float64, n int) float64 {
	return (b - a) / float64(m.Effective(n))
}

// validate checks the shared rule preconditions. The boundary layer is
// expected to reject bad input first; these sentinels are a backstop so a
// misuse fails loudly instead of returning garbage.
func validate(f Func, a, b float64, n int) error {
	if f == nil {
		return ErrNilFunc
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return ErrInvalidInterval
	}
	if n < 1 {
		return ErrBadSubdivisions
	}

	return nil
}

// eval samples f at x and converts a non-finite result into an error,
// recording where the integrand blew up.
func eval(f Func, x float64) (float64, error) {
	y := f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w at x=%g", ErrNonFiniteSample, x)
	}

	return y, nil
}
