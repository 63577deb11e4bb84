package stats

import (
	"fmt"
	"math"
)

// Line is the ordinary least-squares regression line y = Intercept + Slope·x
// implied by a Result.
type Line struct {
	// Slope is SumProducts / SumSquaresX.
	Slope float64
	// Intercept is MeanY - Slope·MeanX.
	Intercept float64
	// RSquared is the coefficient of determination (equals Coefficient²).
	RSquared float64
	// RMSE is the root mean square of the residuals.
	RMSE float64
}

// Formula returns a human-readable representation of the line.
func (l Line) Formula() string {
	return fmt.Sprintf("y = %.4f + %.4f * x", l.Intercept, l.Slope)
}

// Fit derives the least-squares line from a computed Result.
//
// The line reuses the sums already accumulated by Compute, so no extra pass
// over the means is needed. It returns false when x has no variance or the
// result is otherwise degenerate; a constant y still yields a flat line
// with RSquared 0.
func Fit(res Result) (Line, bool) {
	switch res.Degeneracy {
	case DegenerateNone, DegenerateConstantY:
	default:
		return Line{}, false
	}

	slope := res.SumProducts / res.SumSquaresX
	intercept := res.MeanY - slope*res.MeanX

	predicted := make([]float64, res.N)
	for i, x := range res.XValues {
		predicted[i] = intercept + slope*x
	}

	return Line{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  calculateRSquared(res.YValues, predicted),
		RMSE:      calculateRMSE(res.YValues, predicted),
	}, true
}

// calculateRSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant observed series has SS_tot = 0 and yields 0.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := Mean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
