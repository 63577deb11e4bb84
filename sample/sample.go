package sample

import (
	"fmt"

	"github.com/juninhoojl/pearson-correlation-coefficient/internal/hash"
)

// Observation is one paired (x, y) data point.
type Observation struct {
	X float64
	Y float64
}

// Sample is an ordered, immutable sequence of observations in source order.
// The zero value is an empty Sample.
type Sample struct {
	obs []Observation
}

// New builds a Sample from the given observations. The slice is copied.
func New(obs ...Observation) Sample {
	if len(obs) == 0 {
		return Sample{}
	}

	return Sample{obs: append([]Observation(nil), obs...)}
}

// FromSeries pairs xs[i] with ys[i]. It fails when the lengths differ.
func FromSeries(xs, ys []float64) (Sample, error) {
	if len(xs) != len(ys) {
		return Sample{}, fmt.Errorf("mismatched series lengths: %d x vs %d y", len(xs), len(ys))
	}

	obs := make([]Observation, len(xs))
	for i := range xs {
		obs[i] = Observation{X: xs[i], Y: ys[i]}
	}

	return Sample{obs: obs}, nil
}

// Len returns the number of observations.
func (s Sample) Len() int {
	return len(s.obs)
}

// At returns the i-th observation. It panics if i is out of range.
func (s Sample) At(i int) Observation {
	return s.obs[i]
}

// Observations returns a copy of the observations.
func (s Sample) Observations() []Observation {
	return append([]Observation(nil), s.obs...)
}

// Xs returns a fresh slice holding every x component in order.
func (s Sample) Xs() []float64 {
	out := make([]float64, len(s.obs))
	for i, o := range s.obs {
		out[i] = o.X
	}

	return out
}

// Ys returns a fresh slice holding every y component in order.
func (s Sample) Ys() []float64 {
	out := make([]float64, len(s.obs))
	for i, o := range s.obs {
		out[i] = o.Y
	}

	return out
}

// Swap returns a new Sample with the roles of x and y exchanged.
func (s Sample) Swap() Sample {
	if len(s.obs) == 0 {
		return Sample{}
	}

	obs := make([]Observation, len(s.obs))
	for i, o := range s.obs {
		obs[i] = Observation{X: o.Y, Y: o.X}
	}

	return Sample{obs: obs}
}

// Digest returns an order-sensitive xxHash64 of the observation values.
// Two samples with equal values in equal order share a digest, however the
// numbers were written in the source.
func (s Sample) Digest() uint64 {
	return hash.Pairs(len(s.obs), func(i int) (float64, float64) {
		return s.obs[i].X, s.obs[i].Y
	})
}
