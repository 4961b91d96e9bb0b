// Package exprfn turns user-supplied formula strings like
// "x^2 + 2*x + sin(x)" into quadrature.Func integrands, safely.
//
// Safety comes from a closed environment: the compiler exposes exactly one
// variable (x), a small whitelist of math functions (sin, cos, tan, exp,
// log, sqrt, abs, pow) and two constants (pi, e). Any other identifier is
// a compile-time error, so an expression can never reach the process
// environment, the filesystem or reflection.
//
// Compiled programs are cached by source string (TTL-bounded), so repeated
// requests for the same formula — the common case when a user tweaks n or
// the bounds in a dashboard — skip recompilation. The returned Func is a
// closure over the immutable compiled program and is safe for concurrent
// use.
//
// Runtime faults (log of a negative number, division blowing up, a
// non-numeric result) surface as NaN from the returned Func; the
// quadrature rules' finiteness check then converts the first poisoned
// sample into an evaluation failure with its location.
package exprfn
