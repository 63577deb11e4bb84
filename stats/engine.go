package stats

import (
	"math"

	"github.com/juninhoojl/pearson-correlation-coefficient/sample"
)

// Compute derives means, deviations, squared deviations, deviation products
// and the Pearson coefficient from s.
//
// Parameters:
//   - s: Sample to analyze; it is not modified
//
// Returns:
//   - Result: Snapshot whose slices are owned by the caller
//
// Degenerate samples (empty, single observation, constant axis, non-finite
// values) yield a NaN coefficient and a matching Result.Degeneracy instead of
// an error.
//
// Example:
//
//	s := sample.New(sample.Observation{X: 1, Y: 2}, sample.Observation{X: 2, Y: 4})
//	res := stats.Compute(s)
//	fmt.Printf("%.4f\n", res.Coefficient) // 1.0000
func Compute(s sample.Sample) Result {
	n := s.Len()
	res := Result{
		N:                 n,
		XValues:           s.Xs(),
		YValues:           s.Ys(),
		DeviationX:        make([]float64, n),
		DeviationY:        make([]float64, n),
		SquaredDeviationX: make([]float64, n),
		SquaredDeviationY: make([]float64, n),
		ProductDeviation:  make([]float64, n),
	}

	if n == 0 {
		res.MeanX = math.NaN()
		res.MeanY = math.NaN()
		res.Coefficient = math.NaN()
		res.Degeneracy = DegenerateEmpty

		return res
	}

	// Pass 1: means
	res.MeanX = Mean(res.XValues)
	res.MeanY = Mean(res.YValues)

	// Pass 2: per-point deviations
	for i := 0; i < n; i++ {
		dx := res.XValues[i] - res.MeanX
		dy := res.YValues[i] - res.MeanY
		res.DeviationX[i] = dx
		res.DeviationY[i] = dy
		res.SquaredDeviationX[i] = dx * dx
		res.SquaredDeviationY[i] = dy * dy
		res.ProductDeviation[i] = dx * dy
	}

	// Pass 3: reductions
	res.SumProducts = sum(res.ProductDeviation)
	res.SumSquaresX = sum(res.SquaredDeviationX)
	res.SumSquaresY = sum(res.SquaredDeviationY)

	res.Coefficient, res.Degeneracy = coefficient(&res)

	return res
}

// Coefficient is a shortcut for Compute(s).Coefficient.
func Coefficient(s sample.Sample) float64 {
	res := Compute(s)
	return res.Coefficient
}

// coefficient applies the degenerate-input policy before dividing.
func coefficient(res *Result) (float64, Degeneracy) {
	switch {
	case res.N == 1:
		return math.NaN(), DegenerateSingle
	case !isFinite(res.MeanX) || !isFinite(res.MeanY),
		!isFinite(res.SumProducts) || !isFinite(res.SumSquaresX) || !isFinite(res.SumSquaresY):
		return math.NaN(), DegenerateNonFinite
	case isConstant(res.XValues) || res.SumSquaresX == 0:
		return math.NaN(), DegenerateConstantX
	case isConstant(res.YValues) || res.SumSquaresY == 0:
		return math.NaN(), DegenerateConstantY
	}

	r := res.SumProducts / res.Denominator()
	if !isFinite(r) {
		return math.NaN(), DegenerateNonFinite
	}

	return r, DegenerateNone
}

// Mean calculates the arithmetic mean.
//
// Returns:
//   - float64: Arithmetic mean of the values (NaN if the slice is empty)
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return sum(values) / float64(len(values))
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}

	return total
}

// isConstant compares the values themselves: a repeated value that is not
// exactly representable can leave a mean one ulp off and a tiny non-zero
// sum of squares.
func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}

	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
