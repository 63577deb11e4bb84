// Package stats computes the Pearson product-moment correlation coefficient
// and its supporting deviation statistics for a sample.Sample.
//
// Compute is a pure function: it never mutates its input and never panics.
// It makes three sequential passes over the sample:
//
//  1. Means of x and y
//  2. Per-point deviations, squared deviations and deviation products
//  3. Reduction sums and the coefficient
//
// The coefficient is
//
//	r = Σ(dx·dy) / (√Σdx² · √Σdy²)
//
// # Degenerate Input
//
// Inputs for which r is undefined produce NaN rather than an error, and the
// reason is recorded in Result.Degeneracy:
//
//   - DegenerateEmpty: no observations; both means are NaN as well
//   - DegenerateSingle: one observation; every deviation is zero
//   - DegenerateConstantX / DegenerateConstantY: zero variance on that axis
//   - DegenerateNonFinite: NaN or ±Inf in the input, or an overflowing sum
//
// Use Result.Defined to tell a finite coefficient from a degenerate one:
//
//	res := stats.Compute(s)
//	if !res.Defined() {
//	    fmt.Println("correlation undefined:", res.Degeneracy)
//	}
//
// For finite input with non-zero variance on both axes r lies in [-1, 1] up
// to floating-point rounding; the value is reported as computed, not clamped.
package stats
