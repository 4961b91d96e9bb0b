// Package quadview is an interactive playground for classical numerical
// integration — approximate a definite integral three ways, measure how
// fast each rule converges, and see exactly how every rule carves up the
// interval.
//
// 🚀 What is quadview?
//
//	A small, focused library (plus an optional HTTP boundary) that brings together:
//		• Quadrature rules: Trapezoidal, Midpoint and Simpson (parabolic)
//		• A high-accuracy reference oracle for "exact" values and error bounds
//		• Error metrics and Experimental Order of Convergence (EOC)
//		• A convergence analyzer sweeping subdivision counts and crowning a winner
//		• Visualization data: curve samples plus trapezoid/rectangle/parabola overlays
//
// ✨ Why choose quadview?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest numerics – explicit step-size rules, stable EOC guards, no silent NaNs
//   - Pure computation – stateless value objects, safe for concurrent callers
//   - Extensible – supply your own integrand via the catalog or expression compiler
//
// Everything is organized under focused subpackages:
//
//	quadrature/  — the three rules, the Method enum and the Func capability
//	refquad/     — the reference-value oracle (Gauss–Legendre via gonum)
//	convergence/ — error metrics, EOC and the multi-method analyzer
//	plotdata/    — curve samples and per-rule geometric overlay shapes
//	catalog/     — the named test-function library (sin, e^x, |x−1|, …)
//	exprfn/      — safe compiler for user-supplied formulas like "x^2 + sin(x)"
//	httpapi/     — JSON boundary exposing calculate / analyze / functions
//
// Quick taste:
//
//	approx, _ := quadrature.Integrate(quadrature.Simpson, math.Sin, 0, math.Pi, 10)
//	// approx ≈ 2.000000108
//
// See each subpackage's doc.go for contracts, complexity and error semantics.
package quadview
