// Package catalog is the named test-function library: a dozen integrands
// with known character — smooth, piecewise-linear, oscillating,
// discontinuous — each carrying default bounds, a display name, LaTeX and
// the rule expected to handle it best.
//
// A Catalog is an explicit value assembled by the caller (no global
// registry): start from Builtin() and optionally merge expression-backed
// entries loaded from a YAML file via LoadFile. Lookup is by stable string
// ID; List returns entries in registration order so UIs render
// deterministically.
//
// The catalog lives at the boundary: the numeric core only ever sees the
// plain quadrature.Func a lookup yields.
package catalog
