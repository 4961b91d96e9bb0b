package plotdata_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadview/quadview/plotdata"
	"github.com/quadview/quadview/quadrature"
)

// TestBuild_CurveSampling checks the dense curve: requested resolution,
// exact endpoints, values on the integrand.
func TestBuild_CurveSampling(t *testing.T) {
	payload, err := plotdata.Build(math.Sin, 0, math.Pi, 4, quadrature.Trapezoidal, 50)
	require.NoError(t, err)

	require.Len(t, payload.Curve, 50)
	assert.Equal(t, 0.0, payload.Curve[0].X, "first sample on the lower bound")
	assert.Equal(t, math.Pi, payload.Curve[49].X, "last sample exactly on the upper bound")
	for _, p := range payload.Curve {
		assert.InDelta(t, math.Sin(p.X), p.Y, 1e-15)
	}
}

// TestBuild_DefaultResolution: curvePoints < 2 falls back to
// DefaultCurvePoints, independent of n.
func TestBuild_DefaultResolution(t *testing.T) {
	payload, err := plotdata.Build(math.Sin, 0, 1, 3, quadrature.Midpoint, 0)
	require.NoError(t, err)
	assert.Len(t, payload.Curve, plotdata.DefaultCurvePoints)
}

// TestBuild_TrapezoidShapes verifies one trapezoid per subinterval with
// corners on the curve and seamless joins.
func TestBuild_TrapezoidShapes(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	n := 4

	payload, err := plotdata.Build(f, 0, 2, n, quadrature.Trapezoidal, 10)
	require.NoError(t, err)
	require.Len(t, payload.Shapes, n)

	prevX1 := 0.0
	for i, s := range payload.Shapes {
		trap, ok := s.(plotdata.Trapezoid)
		require.True(t, ok, "shape %d must be a Trapezoid", i)
		assert.Equal(t, prevX1, trap.X0, "shape %d must join the previous one", i)
		assert.InDelta(t, f(trap.X0), trap.Y0, 1e-15)
		assert.InDelta(t, f(trap.X1), trap.Y1, 1e-15)
		prevX1 = trap.X1
	}
	assert.Equal(t, 2.0, prevX1, "last trapezoid ends on b")
}

// TestBuild_RectangleShapes verifies one rectangle per subinterval with
// the midpoint height.
func TestBuild_RectangleShapes(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }
	n := 5

	payload, err := plotdata.Build(f, 0, 5, n, quadrature.Midpoint, 10)
	require.NoError(t, err)
	require.Len(t, payload.Shapes, n)

	for i, s := range payload.Shapes {
		rect, ok := s.(plotdata.Rectangle)
		require.True(t, ok, "shape %d must be a Rectangle", i)
		assert.InDelta(t, f((rect.X0+rect.X1)/2), rect.Y, 1e-15, "height is f at the midpoint")
		assert.InDelta(t, 1.0, rect.X1-rect.X0, 1e-15, "uniform width h=1")
	}
}

// TestBuild_ParabolaShapes verifies Simpson geometry: one parabola per
// subinterval pair, and the odd-n adjustment keeps the shape count in sync
// with the numeric rule (n=5 → 6 subintervals → 3 parabolas).
func TestBuild_ParabolaShapes(t *testing.T) {
	payload, err := plotdata.Build(math.Sin, 0, math.Pi, 5, quadrature.Simpson, 10)
	require.NoError(t, err)
	require.Len(t, payload.Shapes, 3, "odd n=5 is evened to 6 before shaping")

	h := math.Pi / 6
	for i, s := range payload.Shapes {
		par, ok := s.(plotdata.Parabola)
		require.True(t, ok, "shape %d must be a Parabola", i)
		assert.InDelta(t, h, par.X1-par.X0, 1e-15)
		assert.InDelta(t, h, par.X2-par.X1, 1e-15)
		assert.InDelta(t, math.Sin(par.X1), par.Y1, 1e-15)
	}

	// Even n stays as requested: n=4 → 2 parabolas.
	payload, err = plotdata.Build(math.Sin, 0, math.Pi, 4, quadrature.Simpson, 10)
	require.NoError(t, err)
	assert.Len(t, payload.Shapes, 2)
}

// TestBuild_ShapeJSONTags checks every shape marshals with its "type"
// discriminator so renderers can switch on it.
func TestBuild_ShapeJSONTags(t *testing.T) {
	cases := []struct {
		shape plotdata.Shape
		want  string
	}{
		{plotdata.Trapezoid{X0: 0, Y0: 1, X1: 2, Y1: 3}, `"type":"trapezoid"`},
		{plotdata.Rectangle{X0: 0, X1: 1, Y: 2}, `"type":"rectangle"`},
		{plotdata.Parabola{X0: 0, Y0: 1, X1: 2, Y1: 3, X2: 4, Y2: 5}, `"type":"parabola"`},
	}

	for _, tc := range cases {
		raw, err := json.Marshal(tc.shape)
		require.NoError(t, err)
		assert.Contains(t, string(raw), tc.want)
	}
}

// TestBuild_NonFinitePropagates: a singular sample fails the build with
// the shared evaluation-failure sentinel.
func TestBuild_NonFinitePropagates(t *testing.T) {
	inv := func(x float64) float64 { return 1 / x }

	_, err := plotdata.Build(inv, 0, 1, 4, quadrature.Trapezoidal, 10)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteSample)
}

// TestBuild_ArgumentBackstops covers the sentinel validation.
func TestBuild_ArgumentBackstops(t *testing.T) {
	_, err := plotdata.Build(nil, 0, 1, 4, quadrature.Midpoint, 10)
	assert.ErrorIs(t, err, quadrature.ErrNilFunc)

	_, err = plotdata.Build(math.Sin, 1, 0, 4, quadrature.Midpoint, 10)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInterval)

	_, err = plotdata.Build(math.Sin, 0, 1, 0, quadrature.Midpoint, 10)
	assert.ErrorIs(t, err, quadrature.ErrBadSubdivisions)

	_, err = plotdata.Build(math.Sin, 0, 1, 4, quadrature.Method(42), 10)
	assert.ErrorIs(t, err, quadrature.ErrUnknownMethod)
}
