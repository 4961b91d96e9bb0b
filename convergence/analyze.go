package convergence

import (
	"fmt"
	"sort"

	"github.com/quadview/quadview/quadrature"
	"github.com/quadview/quadview/refquad"
)

// Analyze — multi-method convergence analysis
//
// Description:
//
//	Computes one shared reference value, then sweeps every method over the
//	supplied subdivision counts in ascending order, deriving per-entry
//	error metrics and EOC, per-position wins, the overall winner and the
//	improvement ratios of the losing methods.
//
// Algorithm:
//  1. reference ← oracle.Integrate(f, a, b)        (once, shared)
//  2. sort nValues ascending (duplicates preserved)
//  3. per method, per n: approximation → ErrorPair → EOC vs the previous
//     entry of the same method (first entry: absent)
//  4. per sorted position: every method matching the minimum absolute
//     error earns one win
//  5. winner: most wins → smallest |error| at the largest n →
//     lexicographically smallest name
//  6. improvements: finalErr(m)/finalErr(winner) for every loser, only
//     when the winner's final error is strictly positive
//
// Complexity:
//
//	Time   = O(|methods| · Σ nᵢ) integrand samples + one reference pass
//	Memory = O(|methods| · |nValues|) for the report
//
// Errors:
//   - ErrNoMethods / ErrNoSubdivisions / ErrNilIntegrator on empty input.
//   - Reference failures and any rule/n cell failure abort the whole
//     analysis, wrapped with their origin; no partial report is returned.
func Analyze(f quadrature.Func, a, b float64, methods []quadrature.Method, nValues []int, oracle refquad.Integrator) (*Report, error) {
	if len(methods) == 0 {
		return nil, ErrNoMethods
	}
	if len(nValues) == 0 {
		return nil, ErrNoSubdivisions
	}
	if oracle == nil {
		return nil, ErrNilIntegrator
	}

	methods = dedupe(methods)

	reference, estimate, err := oracle.Integrate(f, a, b)
	if err != nil {
		return nil, fmt.Errorf("convergence: reference computation: %w", err)
	}

	// Ascending-n ordering invariant: EOC always compares consecutive
	// entries in sorted order, no matter how the sweep was supplied.
	sorted := append([]int(nil), nValues...)
	sort.Ints(sorted)

	results := make(map[quadrature.Method][]Entry, len(methods))
	for _, m := range methods {
		entries := make([]Entry, 0, len(sorted))
		for _, n := range sorted {
			approx, err := quadrature.Integrate(m, f, a, b, n)
			if err != nil {
				return nil, fmt.Errorf("convergence: %s at n=%d: %w", m, n, err)
			}

			pair := Errors(approx, reference)
			entry := Entry{
				N:             n,
				H:             m.StepSize(a, b, n),
				Approximation: approx,
				AbsError:      pair.Absolute,
				RelError:      pair.Relative,
			}
			if len(entries) > 0 {
				prev := entries[len(entries)-1]
				if eoc, ok := EOC(prev.AbsError, pair.Absolute, prev.N, n); ok {
					entry.EOC = &eoc
				}
			}
			entries = append(entries, entry)
		}
		results[m] = entries
	}

	wins := tallyWins(methods, results, len(sorted))
	winner := pickWinner(methods, wins, results)

	improvements := make(map[quadrature.Method]float64)
	if winnerFinal := finalError(results[winner]); winnerFinal > 0 {
		for _, m := range methods {
			if m != winner {
				improvements[m] = finalError(results[m]) / winnerFinal
			}
		}
	}

	return &Report{
		Reference:         reference,
		ReferenceEstimate: estimate,
		Results:           results,
		Winner:            winner,
		Wins:              wins,
		Improvements:      improvements,
	}, nil
}

// dedupe drops repeated methods, preserving first-seen order. The method
// list is a set; duplicate entries would double-count wins.
func dedupe(methods []quadrature.Method) []quadrature.Method {
	seen := make(map[quadrature.Method]bool, len(methods))
	out := methods[:0:0]
	for _, m := range methods {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	return out
}

// tallyWins credits, at each sorted-n position, every method whose
// absolute error equals the minimum at that position.
func tallyWins(methods []quadrature.Method, results map[quadrature.Method][]Entry, positions int) map[quadrature.Method]int {
	wins := make(map[quadrature.Method]int, len(methods))
	for _, m := range methods {
		wins[m] = 0
	}

	for i := 0; i < positions; i++ {
		best := results[methods[0]][i].AbsError
		for _, m := range methods[1:] {
			if e := results[m][i].AbsError; e < best {
				best = e
			}
		}
		for _, m := range methods {
			if results[m][i].AbsError == best {
				wins[m]++
			}
		}
	}

	return wins
}

// pickWinner applies the three-tier tie-break: total wins, then absolute
// error at the largest n, then lexicographic method name.
func pickWinner(methods []quadrature.Method, wins map[quadrature.Method]int, results map[quadrature.Method][]Entry) quadrature.Method {
	winner := methods[0]
	for _, m := range methods[1:] {
		if beats(m, winner, wins, results) {
			winner = m
		}
	}

	return winner
}

// beats reports whether challenger outranks incumbent under the winner
// ordering.
func beats(challenger, incumbent quadrature.Method, wins map[quadrature.Method]int, results map[quadrature.Method][]Entry) bool {
	if wins[challenger] != wins[incumbent] {
		return wins[challenger] > wins[incumbent]
	}
	cf, inf := finalError(results[challenger]), finalError(results[incumbent])
	if cf != inf {
		return cf < inf
	}

	return challenger.String() < incumbent.String()
}

// finalError returns the absolute error at the largest n of a sweep.
func finalError(entries []Entry) float64 {
	return entries[len(entries)-1].AbsError
}
