package plotdata

import (
	"fmt"
	"math"

	"github.com/quadview/quadview/quadrature"
)

// Build — visualization data for one quadrature request
//
// Description:
//
//	Samples f at curvePoints evenly spaced positions across [a, b]
//	(endpoints included) and generates the overlay shapes matching the
//	rule's decomposition of the interval. The curve resolution is
//	independent of n; curvePoints < 2 selects DefaultCurvePoints.
//
// Complexity:
//
//	Time   = O(curvePoints + n) samples
//	Memory = O(curvePoints + n)
//
// Errors:
//   - quadrature.ErrNilFunc / ErrInvalidInterval / ErrBadSubdivisions /
//     ErrUnknownMethod on bad arguments.
//   - quadrature.ErrNonFiniteSample if f returns NaN or ±Inf at any curve
//     or shape sample.
func Build(f quadrature.Func, a, b float64, n int, method quadrature.Method, curvePoints int) (*Payload, error) {
	if f == nil {
		return nil, quadrature.ErrNilFunc
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return nil, quadrature.ErrInvalidInterval
	}
	if n < 1 {
		return nil, quadrature.ErrBadSubdivisions
	}
	if curvePoints < 2 {
		curvePoints = DefaultCurvePoints
	}

	curve, err := sampleCurve(f, a, b, curvePoints)
	if err != nil {
		return nil, err
	}

	shapes, err := buildShapes(f, a, b, n, method)
	if err != nil {
		return nil, err
	}

	return &Payload{Curve: curve, Shapes: shapes}, nil
}

// sampleCurve evaluates f on an inclusive linspace of count points.
func sampleCurve(f quadrature.Func, a, b float64, count int) ([]Point, error) {
	step := (b - a) / float64(count-1)
	curve := make([]Point, count)
	for i := 0; i < count; i++ {
		x := a + float64(i)*step
		if i == count-1 {
			x = b // keep the last sample exactly on the bound
		}
		y, err := eval(f, x)
		if err != nil {
			return nil, err
		}
		curve[i] = Point{X: x, Y: y}
	}

	return curve, nil
}

// buildShapes dispatches exhaustively on the rule's geometric decomposition.
func buildShapes(f quadrature.Func, a, b float64, n int, method quadrature.Method) ([]Shape, error) {
	switch method {
	case quadrature.Trapezoidal:
		return trapezoids(f, a, b, n)
	case quadrature.Midpoint:
		return rectangles(f, a, b, n)
	case quadrature.Simpson:
		return parabolas(f, a, b, quadrature.Simpson.Effective(n))
	default:
		return nil, quadrature.ErrUnknownMethod
	}
}

// trapezoids emits one Trapezoid per subinterval, corners on the curve.
func trapezoids(f quadrature.Func, a, b float64, n int) ([]Shape, error) {
	h := (b - a) / float64(n)
	shapes := make([]Shape, 0, n)

	x0 := a
	y0, err := eval(f, x0)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		x1 := a + float64(i)*h
		y1, err := eval(f, x1)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, Trapezoid{X0: x0, Y0: y0, X1: x1, Y1: y1})
		x0, y0 = x1, y1
	}

	return shapes, nil
}

// rectangles emits one Rectangle per subinterval at the midpoint height.
func rectangles(f quadrature.Func, a, b float64, n int) ([]Shape, error) {
	h := (b - a) / float64(n)
	shapes := make([]Shape, 0, n)

	for i := 0; i < n; i++ {
		x0 := a + float64(i)*h
		y, err := eval(f, x0+h/2)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, Rectangle{X0: x0, X1: x0 + h, Y: y})
	}

	return shapes, nil
}

// parabolas emits one Parabola per subinterval pair; n is already even
// here (the caller applies Simpson's Effective adjustment).
func parabolas(f quadrature.Func, a, b float64, n int) ([]Shape, error) {
	h := (b - a) / float64(n)
	shapes := make([]Shape, 0, n/2)

	for i := 0; i < n; i += 2 {
		x0 := a + float64(i)*h
		x1 := a + float64(i+1)*h
		x2 := a + float64(i+2)*h
		y0, err := eval(f, x0)
		if err != nil {
			return nil, err
		}
		y1, err := eval(f, x1)
		if err != nil {
			return nil, err
		}
		y2, err := eval(f, x2)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, Parabola{X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2})
	}

	return shapes, nil
}

// eval mirrors the rules' finiteness policy for shape and curve samples.
func eval(f quadrature.Func, x float64) (float64, error) {
	y := f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w at x=%g", quadrature.ErrNonFiniteSample, x)
	}

	return y, nil
}
