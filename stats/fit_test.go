package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juninhoojl/pearson-correlation-coefficient/sample"
)

func TestFit_ExactLine(t *testing.T) {
	// y = 1 + 2x
	res := Compute(mustSample(t, []float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}))

	line, ok := Fit(res)
	require.True(t, ok)
	require.InDelta(t, 2.0, line.Slope, 1e-10)
	require.InDelta(t, 1.0, line.Intercept, 1e-10)
	require.InDelta(t, 1.0, line.RSquared, 1e-10)
	require.InDelta(t, 0.0, line.RMSE, 1e-10)
	require.Equal(t, "y = 1.0000 + 2.0000 * x", line.Formula())
}

func TestFit_RSquaredMatchesCoefficient(t *testing.T) {
	res := Compute(mustSample(t, []float64{1, 2, 3, 4, 5}, []float64{2, 1, 4, 3, 5}))

	line, ok := Fit(res)
	require.True(t, ok)
	require.InDelta(t, res.Coefficient*res.Coefficient, line.RSquared, 1e-10)
	require.Greater(t, line.RMSE, 0.0)
}

func TestFit_ConstantY(t *testing.T) {
	res := Compute(mustSample(t, []float64{1, 2, 3}, []float64{4, 4, 4}))

	line, ok := Fit(res)
	require.True(t, ok)
	require.Zero(t, line.Slope)
	require.Equal(t, 4.0, line.Intercept)
	require.Zero(t, line.RSquared)
}

func TestFit_Undefined(t *testing.T) {
	cases := []Result{
		Compute(sample.Sample{}),
		Compute(mustSample(t, []float64{1}, []float64{1})),
		Compute(mustSample(t, []float64{2, 2}, []float64{1, 3})),
		Compute(mustSample(t, []float64{math.Inf(1), 2}, []float64{1, 3})),
	}

	for _, res := range cases {
		_, ok := Fit(res)
		require.False(t, ok, res.Degeneracy.String())
	}
}

func TestCalculateRSquaredAndRMSE_Empty(t *testing.T) {
	require.Zero(t, calculateRSquared(nil, nil))
	require.Zero(t, calculateRMSE(nil, nil))
}
