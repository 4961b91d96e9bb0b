// Package convergence measures how fast each quadrature rule's error
// shrinks as the subdivision count grows, and crowns a winner.
//
// 🚀 What is convergence analysis?
//
//	Run every selected rule over a sweep of subdivision counts, compare
//	each approximation against a high-accuracy reference value, and fit
//	the empirical decay rate:
//
//	  EOC = ln(errₚᵣₑᵥ / err꜀ᵤᵣᵣ) / ln(n꜀ᵤᵣᵣ / nₚᵣₑᵥ)
//
//	The Experimental Order of Convergence tells you a rule's effective
//	accuracy order: ≈2 for trapezoidal/midpoint, ≈4 for Simpson on smooth
//	integrands.
//
// ✨ Key behaviors:
//   - One reference computation per analysis, shared by every rule and n.
//   - Subdivision counts are processed in ascending order regardless of how
//     they were supplied; duplicates are kept, not collapsed.
//   - EOC is a first-class "maybe": the first entry of every rule, and any
//     pair with a non-positive error or repeated n, reports an absent EOC —
//     never 0, never NaN.
//   - Per-n wins: at each position every rule matching the minimum absolute
//     error is credited, so exact ties produce simultaneous wins.
//   - Overall winner: most wins, then smallest absolute error at the
//     largest n, then lexicographically smallest method name.
//   - Improvement ratios relate each losing rule's final error to the
//     winner's, and are omitted entirely when the winner's final error is 0.
//   - Any failure — reference or a single rule/n cell — fails the whole
//     analysis. No partial reports.
//
// ⚙️ Usage:
//
//	report, err := convergence.Analyze(math.Sin, 0, math.Pi,
//	    quadrature.Methods(), []int{4, 8, 16, 32, 64},
//	    refquad.NewGaussLegendre())
//
// Complexity: O(|methods| · Σnᵢ) integrand evaluations plus one reference
// integration; the report is a plain value owned by the caller.
package convergence
