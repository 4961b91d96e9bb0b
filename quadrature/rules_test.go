package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadview/quadview/quadrature"
)

const eps = 1e-12

// TestTrapezoidalRule_ExactForLinear verifies the trapezoidal rule is exact
// for f(x) = mx + c at every subdivision count, not just asymptotically.
func TestTrapezoidalRule_ExactForLinear(t *testing.T) {
	f := func(x float64) float64 { return 3*x - 7 }
	// ∫₋₁³ (3x-7) dx = (3/2)x² - 7x |₋₁³ = (13.5-21) - (1.5+7) = -16
	want := -16.0

	for _, n := range []int{1, 2, 3, 7, 100} {
		got, err := quadrature.TrapezoidalRule(f, -1, 3, n)
		require.NoError(t, err, "n=%d", n)
		assert.InDelta(t, want, got, eps, "trapezoidal must be exact for linear f, n=%d", n)
	}
}

// TestAllRules_LinearScenario checks the ∫₀⁵ (2x+1) dx = 30 scenario: all
// three rules are exact here (midpoint and Simpson error terms vanish for
// degree ≤ 1 integrands).
func TestAllRules_LinearScenario(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }

	for _, m := range quadrature.Methods() {
		for _, n := range []int{1, 2, 5, 64} {
			got, err := quadrature.Integrate(m, f, 0, 5, n)
			require.NoError(t, err, "%s n=%d", m, n)
			assert.InDelta(t, 30.0, got, 1e-10, "%s must integrate 2x+1 over [0,5] exactly, n=%d", m, n)
		}
	}
}

// TestSimpsonRule_SinScenario checks Simpson with n=10 over [0, π] lands
// within 1e-4 of the exact value 2.
func TestSimpsonRule_SinScenario(t *testing.T) {
	got, err := quadrature.SimpsonRule(math.Sin, 0, math.Pi, 10)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-4, "Simpson n=10 on sin over [0,π]")
}

// TestSimpsonRule_OddAdjustment verifies an odd n is silently bumped to
// n+1: the result must be identical to the explicit even call, and the
// reported step size must reflect the adjustment.
func TestSimpsonRule_OddAdjustment(t *testing.T) {
	f := math.Exp

	odd, err := quadrature.SimpsonRule(f, 0, 1, 5)
	require.NoError(t, err)
	even, err := quadrature.SimpsonRule(f, 0, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, even, odd, "odd n=5 must compute as n=6")

	assert.Equal(t, 6, quadrature.Simpson.Effective(5), "Simpson must even up odd n")
	assert.Equal(t, 6, quadrature.Simpson.Effective(6), "even n passes through")
	assert.InDelta(t, 1.0/6.0, quadrature.Simpson.StepSize(0, 1, 5), eps, "step size must use the effective n")
	assert.Equal(t, 5, quadrature.Trapezoidal.Effective(5), "other rules never adjust")
	assert.Equal(t, 5, quadrature.Midpoint.Effective(5), "other rules never adjust")
}

// TestRules_ConvergenceSanity compares the three rules on a smooth
// integrand at moderate n: Simpson must beat both order-2 rules, and
// midpoint must carry roughly half the trapezoidal error.
func TestRules_ConvergenceSanity(t *testing.T) {
	exact := 2.0 // ∫₀^π sin = 2
	n := 16

	trap, err := quadrature.TrapezoidalRule(math.Sin, 0, math.Pi, n)
	require.NoError(t, err)
	mid, err := quadrature.MidpointRule(math.Sin, 0, math.Pi, n)
	require.NoError(t, err)
	simp, err := quadrature.SimpsonRule(math.Sin, 0, math.Pi, n)
	require.NoError(t, err)

	errTrap := math.Abs(trap - exact)
	errMid := math.Abs(mid - exact)
	errSimp := math.Abs(simp - exact)

	assert.Less(t, errSimp, errMid, "Simpson must beat midpoint on smooth f")
	assert.Less(t, errSimp, errTrap, "Simpson must beat trapezoidal on smooth f")
	assert.Less(t, errMid, errTrap, "midpoint error constant is half the trapezoidal one")
}

// TestRules_NonFiniteSample ensures a NaN/Inf sample aborts the rule with
// ErrNonFiniteSample instead of returning a poisoned sum.
func TestRules_NonFiniteSample(t *testing.T) {
	inv := func(x float64) float64 { return 1 / x } // +Inf at x=0

	// Trapezoidal and Simpson sample the left endpoint x=0.
	_, err := quadrature.TrapezoidalRule(inv, 0, 1, 4)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteSample, "trapezoidal samples the singular endpoint")

	_, err = quadrature.SimpsonRule(inv, 0, 1, 4)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteSample, "Simpson samples the singular endpoint")

	// Midpoint never touches the endpoints, so the same integrand passes.
	got, err := quadrature.MidpointRule(inv, 0, 1, 4)
	require.NoError(t, err, "midpoint avoids the endpoints")
	assert.True(t, !math.IsNaN(got) && !math.IsInf(got, 0))

	nan := func(float64) float64 { return math.NaN() }
	_, err = quadrature.MidpointRule(nan, 0, 1, 4)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteSample, "NaN interior sample must error")
}

// TestRules_ArgumentValidation covers the sentinel backstops shared by all
// three rules.
func TestRules_ArgumentValidation(t *testing.T) {
	f := func(x float64) float64 { return x }

	for _, m := range quadrature.Methods() {
		_, err := quadrature.Integrate(m, nil, 0, 1, 4)
		assert.ErrorIs(t, err, quadrature.ErrNilFunc, "%s: nil integrand", m)

		_, err = quadrature.Integrate(m, f, 1, 1, 4)
		assert.ErrorIs(t, err, quadrature.ErrInvalidInterval, "%s: a == b", m)

		_, err = quadrature.Integrate(m, f, 2, 1, 4)
		assert.ErrorIs(t, err, quadrature.ErrInvalidInterval, "%s: a > b", m)

		_, err = quadrature.Integrate(m, f, math.Inf(-1), 1, 4)
		assert.ErrorIs(t, err, quadrature.ErrInvalidInterval, "%s: infinite bound", m)

		_, err = quadrature.Integrate(m, f, 0, 1, 0)
		assert.ErrorIs(t, err, quadrature.ErrBadSubdivisions, "%s: n == 0", m)
	}
}

// TestIntegrate_UnknownMethod ensures the dispatch rejects values outside
// the closed enum.
func TestIntegrate_UnknownMethod(t *testing.T) {
	_, err := quadrature.Integrate(quadrature.Method(99), math.Sin, 0, 1, 4)
	assert.ErrorIs(t, err, quadrature.ErrUnknownMethod)
}

// TestMethod_NamesRoundTrip covers String/ParseMethod/MarshalText symmetry
// and the unknown-name error.
func TestMethod_NamesRoundTrip(t *testing.T) {
	for _, m := range quadrature.Methods() {
		parsed, err := quadrature.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)

		text, err := m.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, m.String(), string(text))

		var back quadrature.Method
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}

	_, err := quadrature.ParseMethod("romberg")
	assert.ErrorIs(t, err, quadrature.ErrUnknownMethod)
}
