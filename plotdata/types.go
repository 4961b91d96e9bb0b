// Package plotdata defines the curve and overlay-shape value objects.
package plotdata

import "encoding/json"

// DefaultCurvePoints is the dense-curve resolution used when the caller
// does not ask for a specific one. Independent of the subdivision count n.
const DefaultCurvePoints = 200

// Point is one sample of the plotted curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is the sealed overlay variant: exactly Trapezoid, Rectangle and
// Parabola implement it. Each shape carries only the coordinates a renderer
// needs and marshals with a "type" discriminator.
type Shape interface {
	isShape()
}

// Trapezoid spans one subinterval of the trapezoidal rule; (X0,Y0) and
// (X1,Y1) are the two curve corners, the base sits on the x-axis.
type Trapezoid struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Rectangle spans one subinterval of the midpoint rule; Y is the integrand
// value at the subinterval midpoint.
type Rectangle struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	Y  float64 `json:"y"`
}

// Parabola spans one pair of subintervals of Simpson's rule, passing
// through the three consecutive samples (X0,Y0), (X1,Y1), (X2,Y2).
type Parabola struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func (Trapezoid) isShape() {}
func (Rectangle) isShape() {}
func (Parabola) isShape()  {}

// MarshalJSON tags the shape with type="trapezoid".
func (s Trapezoid) MarshalJSON() ([]byte, error) {
	type plain Trapezoid

	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"trapezoid", plain(s)})
}

// MarshalJSON tags the shape with type="rectangle".
func (s Rectangle) MarshalJSON() ([]byte, error) {
	type plain Rectangle

	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"rectangle", plain(s)})
}

// MarshalJSON tags the shape with type="parabola".
func (s Parabola) MarshalJSON() ([]byte, error) {
	type plain Parabola

	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"parabola", plain(s)})
}

// Payload bundles the dense curve and the ordered overlay shapes for one
// (f, interval, n, method) request. Derived, stateless, recomputed per call.
type Payload struct {
	Curve  []Point `json:"curve"`
	Shapes []Shape `json:"shapes"`
}
