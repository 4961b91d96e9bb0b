// Package quadrature implements the three classical composite quadrature
// rules — Trapezoidal, Midpoint and Simpson — as pure functions over an
// opaque real-valued integrand.
//
// 🚀 What is a quadrature rule?
//
//	A quadrature rule approximates a definite integral ∫ₐᵇ f(x) dx by a
//	weighted sum of function samples on an equal-width partition of [a, b].
//	The three rules here are the standard teaching trio:
//	  • Trapezoidal — connect samples with straight lines (exact for degree ≤ 1)
//	  • Midpoint    — flat rectangles evaluated at subinterval midpoints
//	  • Simpson     — parabolic arcs over pairs of subintervals (degree ≤ 3 exact)
//
// ✨ Key behaviors:
//   - Method is a closed enum; Integrate dispatches exhaustively, so a new
//     rule cannot be silently ignored.
//   - Simpson requires an even subdivision count: an odd n is silently
//     incremented to n+1 before computing anything. Method.Effective and
//     Method.StepSize expose the adjusted values so reported step sizes and
//     visualization shape counts always match the number actually used.
//   - Every sample is checked for finiteness; a NaN or ±Inf sample aborts
//     the rule with ErrNonFiniteSample instead of poisoning the sum.
//
// ⚙️ Usage:
//
//	import "github.com/quadview/quadview/quadrature"
//
//	approx, err := quadrature.Integrate(quadrature.Simpson, math.Sin, 0, math.Pi, 10)
//	h := quadrature.Simpson.StepSize(0, math.Pi, 10)
//
// Performance: each rule is a single fused loop — O(n) time, O(1) memory.
//
// See example_test.go for runnable scenarios.
package quadrature
