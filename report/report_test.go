package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
	"github.com/juninhoojl/pearson-correlation-coefficient/format"
	"github.com/juninhoojl/pearson-correlation-coefficient/sample"
	"github.com/juninhoojl/pearson-correlation-coefficient/stats"
)

func compute(t *testing.T, xs, ys []float64) stats.Result {
	t.Helper()
	s, err := sample.FromSeries(xs, ys)
	require.NoError(t, err)

	return stats.Compute(s)
}

func TestWriteText_PerfectPositive(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, compute(t, []float64{1, 2, 3}, []float64{2, 4, 6}))
	require.NoError(t, err)

	want := `Pearson Correlation Coefficient: 1.0000
Statistics:
  X Values: [1.0, 2.0, 3.0]
  Y Values: [2.0, 4.0, 6.0]
  Mean of X Values (Mx): 2.0000
  Mean of Y Values (My): 4.0000
  Deviation Scores (X - Mx): [-1.0, 0.0, 1.0]
  Deviation Scores (Y - My): [-2.0, 0.0, 2.0]
  Deviation Squared ((X - Mx)^2): [1.0, 0.0, 1.0]
  Deviation Squared ((Y - My)^2): [4.0, 0.0, 4.0]
  Product of Deviation Scores ((X - Mx)(Y - My)): [2.0, 0.0, 2.0]
`
	require.Equal(t, want, buf.String())
}

func TestWriteText_NegativeAndPrecision(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, compute(t, []float64{1, 2, 3}, []float64{5, 3, 1}), WithPrecision(2))
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "Pearson Correlation Coefficient: -1.00", lines[0])
	require.Equal(t, "  Mean of Y Values (My): 3.00", lines[5])
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, stats.Compute(sample.Sample{})))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Pearson Correlation Coefficient: NaN\n"))
	require.Contains(t, out, "  X Values: []\n")
	require.Contains(t, out, "  Mean of X Values (Mx): NaN\n")
}

func TestWriteText_SmallMagnitudes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, compute(t, []float64{0, 5e-7}, []float64{0, 1})))

	out := buf.String()
	require.Contains(t, out, "  X Values: [0.0, 5e-7]\n")
	require.Contains(t, out, "  Mean of X Values (Mx): 0.0000\n")
	require.Contains(t, out, "  Deviation Scores (X - Mx): [-2.5e-7, 2.5e-7]\n")
	require.Contains(t, out, "  Deviation Scores (Y - My): [-0.5, 0.5]\n")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e-4, "0.0001"},
		{2.5e-7, "2.5e-7"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e16"},
		{-1.25e20, "-1.25e20"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatValue(tt.in), "%v", tt.in)
	}
}

func TestFormatFixed(t *testing.T) {
	require.Equal(t, "0.3333", FormatFixed(1.0/3, 4))
	require.Equal(t, "1", FormatFixed(0.9999, 0))
	require.Equal(t, "NaN", FormatFixed(math.NaN(), 4))
	require.Equal(t, "-inf", FormatFixed(math.Inf(-1), 4))
}

func TestFormatList(t *testing.T) {
	require.Equal(t, "[]", FormatList(nil))
	require.Equal(t, "[1.5]", FormatList([]float64{1.5}))
	require.Equal(t, "[1.0, NaN, -3.0]", FormatList([]float64{1, math.NaN(), -3}))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	res := compute(t, []float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	require.NoError(t, Write(&buf, res, WithFormat(format.ReportJSON), WithDigest(0xabc)))

	out := buf.String()
	require.True(t, gjson.Valid(out))
	require.Equal(t, int64(4), gjson.Get(out, "n").Int())
	require.InDelta(t, 1.0, gjson.Get(out, "coefficient").Float(), 1e-9)
	require.True(t, gjson.Get(out, "defined").Bool())
	require.Equal(t, "none", gjson.Get(out, "degeneracy").String())
	require.Equal(t, 2.5, gjson.Get(out, "mean_x").Float())
	require.Equal(t, int64(4), gjson.Get(out, "product_deviation.#").Int())
	require.Equal(t, -1.5, gjson.Get(out, "deviation_x.0").Float())
	require.InDelta(t, 2.0, gjson.Get(out, "fit.slope").Float(), 1e-9)
	require.Equal(t, "y = 1.0000 + 2.0000 * x", gjson.Get(out, "fit.formula").String())
	require.Equal(t, "0000000000000abc", gjson.Get(out, "digest").String())
}

func TestWriteJSON_Degenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, stats.Compute(sample.Sample{}), WithFormat(format.ReportJSON)))

	out := buf.String()
	require.True(t, gjson.Valid(out))
	require.Equal(t, gjson.Null, gjson.Get(out, "coefficient").Type)
	require.Equal(t, gjson.Null, gjson.Get(out, "mean_x").Type)
	require.False(t, gjson.Get(out, "defined").Bool())
	require.Equal(t, "empty", gjson.Get(out, "degeneracy").String())
	require.True(t, gjson.Get(out, "x_values").IsArray())
	require.False(t, gjson.Get(out, "fit").Exists())
	require.False(t, gjson.Get(out, "digest").Exists())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	res := compute(t, []float64{2, 2}, []float64{1, 4})
	require.NoError(t, Write(&buf, res, WithFormat(format.ReportYAML)))

	require.Contains(t, buf.String(), "coefficient: .nan\n")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, 2, doc["n"])
	require.Equal(t, false, doc["defined"])
	require.Equal(t, "constant-x", doc["degeneracy"])
	require.Equal(t, 2.5, doc["mean_y"])
	require.Len(t, doc["deviation_y"], 2)
	require.NotContains(t, doc, "fit")
}

func TestWrite_InvalidOptions(t *testing.T) {
	res := stats.Compute(sample.Sample{})

	err := Write(&bytes.Buffer{}, res, WithFormat(format.ReportFormat(9)))
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	err = Write(&bytes.Buffer{}, res, WithPrecision(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	err = Write(&bytes.Buffer{}, res, WithPrecision(MaxPrecision+1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	res := compute(t, []float64{1, 2}, []float64{1, 2})

	for _, f := range []format.ReportFormat{format.ReportText, format.ReportJSON, format.ReportYAML} {
		err := Write(failingWriter{}, res, WithFormat(f))
		require.Error(t, err, f.String())
	}
}
