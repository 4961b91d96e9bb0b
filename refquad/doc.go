// Package refquad computes high-accuracy reference integrals used as
// ground truth when measuring quadrature error.
//
// The core abstraction is the Integrator capability: anything that can
// turn (f, a, b) into a reference value plus an error estimate. The
// analyzer and the HTTP boundary depend on the interface, not on a
// concrete engine, so the primitive stays swappable.
//
// The default implementation, GaussLegendre, delegates to gonum's
// fixed-location Gauss–Legendre quadrature (gonum.org/v1/gonum/integrate/quad)
// and estimates its own error by node doubling: the interval is integrated
// at k and 2k+1 nodes, the finer value is returned, and |I₂ₖ₊₁ − Iₖ| serves
// as the error bound. For smooth integrands on a finite interval this is
// accurate to near machine precision at the default node count.
//
// Failure semantics: a non-finite reference value or estimate (typically a
// non-integrable singularity, or an integrand returning NaN) is reported
// as ErrNotFinite — no degenerate value is ever substituted.
package refquad
