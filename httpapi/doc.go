// Package httpapi is the JSON boundary in front of the quadrature engine.
//
// Three endpoints, mirroring the two logical core operations plus catalog
// discovery:
//
//	GET  /api/functions  — list the named test functions
//	POST /api/calculate  — one approximation: value, step size, reference,
//	                       errors and the visualization payload
//	POST /api/analyze    — full convergence analysis across methods and
//	                       subdivision sweeps
//	GET  /healthz        — liveness
//
// The boundary owns everything the core refuses to: input-shape
// validation (method names, a < b, n ≥ 1, function selection), resolving
// the integrand from either a catalog ID or a user expression, HTTP status
// mapping and request logging. The core packages stay silent and pure.
//
// Status mapping follows the failure taxonomy: malformed input is 400,
// an integrand or reference computation blowing up mid-request is 422,
// anything else is 500. An undefined EOC or omitted improvement ratio is
// not an error — it is JSON null / an absent key.
package httpapi
