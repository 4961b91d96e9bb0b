package quadrature

// TrapezoidalRule — composite trapezoidal quadrature
//
// Description:
//
//	Partitions [a, b] into n equal subintervals of width h = (b-a)/n and
//	sums the areas of the trapezoids spanned by consecutive samples:
//
//	  (h/2) · ( f(x₀) + 2·Σ f(xᵢ), i=1..n-1 + f(xₙ) )
//
//	Exact for any polynomial of degree ≤ 1.
//
// Complexity:
//
//	Time   = O(n)   (n+1 samples, one pass)
//	Memory = O(1)
//
// Errors:
//   - ErrNilFunc, ErrInvalidInterval, ErrBadSubdivisions on bad arguments.
//   - ErrNonFiniteSample if f returns NaN or ±Inf at any sample point.
func TrapezoidalRule(f Func, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	first, err := eval(f, a)
	if err != nil {
		return 0, err
	}
	last, err := eval(f, b)
	if err != nil {
		return 0, err
	}

	sum := first + last
	for i := 1; i < n; i++ {
		y, err := eval(f, a+float64(i)*h)
		if err != nil {
			return 0, err
		}
		sum += 2 * y
	}

	return h / 2 * sum, nil
}

// MidpointRule — composite midpoint quadrature
//
// Description:
//
//	Partitions [a, b] into n equal subintervals of width h = (b-a)/n and
//	sums rectangles whose heights are sampled at subinterval midpoints:
//
//	  h · Σ f(a + (i + ½)·h), i=0..n-1
//
//	Only midpoints are evaluated — the endpoints a and b are never sampled,
//	which lets the rule tolerate integrable endpoint singularities.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors: same set as TrapezoidalRule.
func MidpointRule(f Func, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		y, err := eval(f, a+(float64(i)+0.5)*h)
		if err != nil {
			return 0, err
		}
		sum += y
	}

	return h * sum, nil
}

// SimpsonRule — composite Simpson (parabolic) quadrature
//
// Description:
//
//	Fits a parabola through each triple of consecutive samples, covering
//	the interval in pairs of subintervals. Requires an even subdivision
//	count: an odd n is silently incremented to n+1 before h is computed,
//	so the reported step size and the shape decomposition downstream stay
//	consistent with the sum actually evaluated.
//
//	  (h/3) · ( f(x₀) + 4·Σ f(x_odd) + 2·Σ f(x_even interior) + f(xₙ) )
//
//	where odd/even refer to the sample index. Exact for degree ≤ 3.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors: same set as TrapezoidalRule.
func SimpsonRule(f Func, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, err
	}

	n = Simpson.Effective(n)
	h := (b - a) / float64(n)

	first, err := eval(f, a)
	if err != nil {
		return 0, err
	}
	last, err := eval(f, b)
	if err != nil {
		return 0, err
	}

	sum := first + last
	for i := 1; i < n; i++ {
		y, err := eval(f, a+float64(i)*h)
		if err != nil {
			return 0, err
		}
		if i%2 == 1 {
			sum += 4 * y
		} else {
			sum += 2 * y
		}
	}

	return h / 3 * sum, nil
}

// Integrate dispatches to the rule selected by m. The switch is exhaustive
// over the Method enum; any other value yields ErrUnknownMethod.
func Integrate(m Method, f Func, a, b float64, n int) (float64, error) {
	switch m {
	case Trapezoidal:
		return TrapezoidalRule(f, a, b, n)
	case Midpoint:
		return MidpointRule(f, a, b, n)
	case Simpson:
		return SimpsonRule(f, a, b, n)
	default:
		return 0, ErrUnknownMethod
	}
}
