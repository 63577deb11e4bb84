package report

import (
	"bytes"
	"math"

	"github.com/juninhoojl/pearson-correlation-coefficient/internal/pool"
	"github.com/juninhoojl/pearson-correlation-coefficient/stats"
)

func writeText(bb *pool.ByteBuffer, res stats.Result, precision int) {
	fixed := func(label string, v float64) {
		_, _ = bb.WriteString(label)
		appendFixed(bb, v, precision)
		_ = bb.WriteByte('\n')
	}
	list := func(label string, values []float64) {
		_, _ = bb.WriteString(label)
		appendList(bb, values)
		_ = bb.WriteByte('\n')
	}

	fixed("Pearson Correlation Coefficient: ", res.Coefficient)
	_, _ = bb.WriteString("Statistics:\n")
	list("  X Values: ", res.XValues)
	list("  Y Values: ", res.YValues)
	fixed("  Mean of X Values (Mx): ", res.MeanX)
	fixed("  Mean of Y Values (My): ", res.MeanY)
	list("  Deviation Scores (X - Mx): ", res.DeviationX)
	list("  Deviation Scores (Y - My): ", res.DeviationY)
	list("  Deviation Squared ((X - Mx)^2): ", res.SquaredDeviationX)
	list("  Deviation Squared ((Y - My)^2): ", res.SquaredDeviationY)
	list("  Product of Deviation Scores ((X - Mx)(Y - My)): ", res.ProductDeviation)
}

// FormatFixed formats v with exactly precision decimals. Non-finite values
// are written as NaN, inf and -inf.
func FormatFixed(v float64, precision int) string {
	bb := pool.NewByteBuffer(32)
	appendFixed(bb, v, precision)

	return string(bb.Bytes())
}

// FormatValue formats v with the shortest representation that round-trips,
// always keeping a fractional part ("2.0", "-0.5"). Magnitudes below 1e-4
// or from 1e16 up use exponent notation without a plus sign or padding
// ("1e16", "2.5e-7").
func FormatValue(v float64) string {
	bb := pool.NewByteBuffer(32)
	appendValue(bb, v)

	return string(bb.Bytes())
}

// FormatList formats values as "[a, b, c]" using FormatValue.
func FormatList(values []float64) string {
	bb := pool.NewByteBuffer(2 + 8*len(values))
	appendList(bb, values)

	return string(bb.Bytes())
}

func appendFixed(bb *pool.ByteBuffer, v float64, precision int) {
	if appendNonFinite(bb, v) {
		return
	}
	bb.AppendFloat(v, 'f', precision)
}

func appendValue(bb *pool.ByteBuffer, v float64) {
	if appendNonFinite(bb, v) {
		return
	}

	start := bb.Len()
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		bb.AppendFloat(v, 'e', -1)

		// strconv writes "2.5e-07" or "1e+16"; drop the plus sign and exponent padding.
		e := start + bytes.IndexByte(bb.B[start:], 'e')
		negative := bb.B[e+1] == '-'
		digits := e + 2
		for digits < len(bb.B)-1 && bb.B[digits] == '0' {
			digits++
		}
		exp := string(bb.B[digits:])
		bb.B = bb.B[:e+1]
		if negative {
			_ = bb.WriteByte('-')
		}
		_, _ = bb.WriteString(exp)

		return
	}

	bb.AppendFloat(v, 'f', -1)
	if bytes.IndexByte(bb.B[start:], '.') < 0 {
		_, _ = bb.WriteString(".0")
	}
}

func appendList(bb *pool.ByteBuffer, values []float64) {
	_ = bb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			_, _ = bb.WriteString(", ")
		}
		appendValue(bb, v)
	}
	_ = bb.WriteByte(']')
}

func appendNonFinite(bb *pool.ByteBuffer, v float64) bool {
	switch {
	case math.IsNaN(v):
		_, _ = bb.WriteString("NaN")
	case math.IsInf(v, 1):
		_, _ = bb.WriteString("inf")
	case math.IsInf(v, -1):
		_, _ = bb.WriteString("-inf")
	default:
		return false
	}

	return true
}
