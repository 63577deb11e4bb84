package stats

import (
	"fmt"
	"math"
)

// Degeneracy names why a coefficient is undefined.
type Degeneracy int

const (
	// DegenerateNone means the coefficient is finite.
	DegenerateNone Degeneracy = iota
	// DegenerateEmpty means the sample has no observations.
	DegenerateEmpty
	// DegenerateSingle means the sample has exactly one observation.
	DegenerateSingle
	// DegenerateConstantX means every x value is identical.
	DegenerateConstantX
	// DegenerateConstantY means every y value is identical.
	DegenerateConstantY
	// DegenerateNonFinite means a non-finite input or intermediate value.
	DegenerateNonFinite
)

var degeneracyNames = map[Degeneracy]string{
	DegenerateNone:      "none",
	DegenerateEmpty:     "empty",
	DegenerateSingle:    "single",
	DegenerateConstantX: "constant-x",
	DegenerateConstantY: "constant-y",
	DegenerateNonFinite: "non-finite",
}

// String returns the string representation of the degeneracy.
func (d Degeneracy) String() string {
	if name, exists := degeneracyNames[d]; exists {
		return name
	}

	return "unknown"
}

// Result is a read-only snapshot of the statistics derived from one sample.
//
// Every slice has length N and index i corresponds to observation i.
type Result struct {
	// N is the number of observations.
	N int

	XValues []float64
	YValues []float64

	// MeanX and MeanY are the arithmetic means (NaN when N is 0).
	MeanX float64
	MeanY float64

	// DeviationX[i] = XValues[i] - MeanX.
	DeviationX []float64
	// DeviationY[i] = YValues[i] - MeanY.
	DeviationY []float64
	// SquaredDeviationX[i] = DeviationX[i]².
	SquaredDeviationX []float64
	// SquaredDeviationY[i] = DeviationY[i]².
	SquaredDeviationY []float64
	// ProductDeviation[i] = DeviationX[i] * DeviationY[i].
	ProductDeviation []float64

	// SumProducts is the numerator Σ ProductDeviation.
	SumProducts float64
	// SumSquaresX is Σ SquaredDeviationX.
	SumSquaresX float64
	// SumSquaresY is Σ SquaredDeviationY.
	SumSquaresY float64

	// Coefficient is the Pearson correlation coefficient, NaN when undefined.
	Coefficient float64
	// Degeneracy is DegenerateNone exactly when Coefficient is finite.
	Degeneracy Degeneracy
}

// Defined reports whether the coefficient is a finite number.
func (r *Result) Defined() bool {
	return r.Degeneracy == DegenerateNone
}

// Denominator returns √SumSquaresX · √SumSquaresY.
func (r *Result) Denominator() float64 {
	return math.Sqrt(r.SumSquaresX) * math.Sqrt(r.SumSquaresY)
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{N: %d, r: %.4f, Mx: %.4f, My: %.4f, Degeneracy: %s}",
		r.N, r.Coefficient, r.MeanX, r.MeanY, r.Degeneracy)
}
