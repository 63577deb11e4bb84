// Package report renders a stats.Result for people and for machines.
//
// The text format is the console layout: the
// coefficient and means with a fixed number of decimals, every series as a
// bracketed list. JSON and YAML carry the same fields at full precision,
// plus the degeneracy reason, the least-squares line when one exists, and an
// optional sample digest.
package report

import (
	"fmt"
	"io"

	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
	"github.com/juninhoojl/pearson-correlation-coefficient/format"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/options"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/pool"
	"github.com/juninhoojl/pearson-correlation-coefficient/stats"
)

// DefaultPrecision is the number of decimals used for the coefficient and means.
const DefaultPrecision = 4

// MaxPrecision bounds WithPrecision.
const MaxPrecision = 17

// Config holds rendering settings.
type Config struct {
	Format    format.ReportFormat
	Precision int
	Digest    uint64
	HasDigest bool
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithFormat selects the output format.
func WithFormat(f format.ReportFormat) Option {
	return options.New(func(cfg *Config) error {
		switch f {
		case format.ReportText, format.ReportJSON, format.ReportYAML:
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidFormat, f)
		}
		cfg.Format = f

		return nil
	})
}

// WithPrecision sets the decimals printed for the coefficient and means in text output.
func WithPrecision(p int) Option {
	return options.New(func(cfg *Config) error {
		if p < 0 || p > MaxPrecision {
			return fmt.Errorf("%w: precision %d outside [0, %d]", errs.ErrInvalidOption, p, MaxPrecision)
		}
		cfg.Precision = p

		return nil
	})
}

// WithDigest attaches a sample digest to structured output.
func WithDigest(d uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Digest = d
		cfg.HasDigest = true
	})
}

// Write renders res to w.
func Write(w io.Writer, res stats.Result, opts ...Option) error {
	cfg := &Config{Format: format.ReportText, Precision: DefaultPrecision}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	bb := pool.GetReportBuffer()
	defer pool.PutReportBuffer(bb)

	var err error
	switch cfg.Format {
	case format.ReportJSON:
		err = writeJSON(bb, newDocument(res, cfg))
	case format.ReportYAML:
		err = writeYAML(bb, newDocument(res, cfg))
	default:
		writeText(bb, res, cfg.Precision)
	}
	if err != nil {
		return err
	}

	if _, err := bb.WriteTo(w); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}
