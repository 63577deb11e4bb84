package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/juninhoojl/pearson-correlation-coefficient/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Float is a float64 that encodes NaN and ±Inf as JSON null.
// YAML keeps its native .nan and .inf spellings.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type fitDocument struct {
	Slope     Float  `json:"slope" yaml:"slope"`
	Intercept Float  `json:"intercept" yaml:"intercept"`
	RSquared  Float  `json:"r_squared" yaml:"r_squared"`
	RMSE      Float  `json:"rmse" yaml:"rmse"`
	Formula   string `json:"formula" yaml:"formula"`
}

type document struct {
	N                 int          `json:"n" yaml:"n"`
	Coefficient       Float        `json:"coefficient" yaml:"coefficient"`
	Defined           bool         `json:"defined" yaml:"defined"`
	Degeneracy        string       `json:"degeneracy" yaml:"degeneracy"`
	MeanX             Float        `json:"mean_x" yaml:"mean_x"`
	MeanY             Float        `json:"mean_y" yaml:"mean_y"`
	XValues           []Float      `json:"x_values" yaml:"x_values"`
	YValues           []Float      `json:"y_values" yaml:"y_values"`
	DeviationX        []Float      `json:"deviation_x" yaml:"deviation_x"`
	DeviationY        []Float      `json:"deviation_y" yaml:"deviation_y"`
	SquaredDeviationX []Float      `json:"squared_deviation_x" yaml:"squared_deviation_x"`
	SquaredDeviationY []Float      `json:"squared_deviation_y" yaml:"squared_deviation_y"`
	ProductDeviation  []Float      `json:"product_deviation" yaml:"product_deviation"`
	SumProducts       Float        `json:"sum_products" yaml:"sum_products"`
	SumSquaresX       Float        `json:"sum_squares_x" yaml:"sum_squares_x"`
	SumSquaresY       Float        `json:"sum_squares_y" yaml:"sum_squares_y"`
	Fit               *fitDocument `json:"fit,omitempty" yaml:"fit,omitempty"`
	Digest            string       `json:"digest,omitempty" yaml:"digest,omitempty"`
}

func newDocument(res stats.Result, cfg *Config) document {
	doc := document{
		N:                 res.N,
		Coefficient:       Float(res.Coefficient),
		Defined:           res.Defined(),
		Degeneracy:        res.Degeneracy.String(),
		MeanX:             Float(res.MeanX),
		MeanY:             Float(res.MeanY),
		XValues:           floats(res.XValues),
		YValues:           floats(res.YValues),
		DeviationX:        floats(res.DeviationX),
		DeviationY:        floats(res.DeviationY),
		SquaredDeviationX: floats(res.SquaredDeviationX),
		SquaredDeviationY: floats(res.SquaredDeviationY),
		ProductDeviation:  floats(res.ProductDeviation),
		SumProducts:       Float(res.SumProducts),
		SumSquaresX:       Float(res.SumSquaresX),
		SumSquaresY:       Float(res.SumSquaresY),
	}

	if line, ok := stats.Fit(res); ok {
		doc.Fit = &fitDocument{
			Slope:     Float(line.Slope),
			Intercept: Float(line.Intercept),
			RSquared:  Float(line.RSquared),
			RMSE:      Float(line.RMSE),
			Formula:   line.Formula(),
		}
	}
	if cfg.HasDigest {
		doc.Digest = fmt.Sprintf("%016x", cfg.Digest)
	}

	return doc
}

func floats(values []float64) []Float {
	out := make([]Float, len(values))
	for i, v := range values {
		out[i] = Float(v)
	}

	return out
}

func writeJSON(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return nil
}
