// Package pearson computes the Pearson product-moment correlation coefficient,
// together with its supporting deviation statistics, for a paired sample of
// (x, y) observations read from delimited text.
//
// # Core Features
//
//   - Tolerant line filter: header rows, blank lines and wrong field counts are skipped
//   - Malformed numeric lines are reported as diagnostics and never abort a run
//   - Transparent decoding of compressed sources (Zstd, S2, LZ4, Gzip)
//   - Explicit degeneracy reasons instead of silent NaN results
//   - Text, JSON and YAML reports
//
// # Basic Usage
//
// Analyzing a file:
//
//	import "github.com/juninhoojl/pearson-correlation-coefficient"
//
//	res, s, err := pearson.AnalyzeFile("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("r = %.4f over %d points (digest %016x)\n", res.Coefficient, res.N, s.Digest())
//
// Analyzing in-memory data:
//
//	res, _, err := pearson.Analyze(strings.NewReader("x,y\n1,2\n2,4\n3,6\n"))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the sample, stats and
// report packages. For fine-grained control, use those packages directly.
package pearson

import (
	"io"

	"github.com/juninhoojl/pearson-correlation-coefficient/report"
	"github.com/juninhoojl/pearson-correlation-coefficient/sample"
	"github.com/juninhoojl/pearson-correlation-coefficient/stats"
)

// Analyze ingests r and computes the statistics of the resulting sample.
//
// Malformed lines are passed to the diagnostic reporter configured by opts and
// never cause an error. The returned error is non-nil only when the options are
// invalid or r fails.
//
// Example:
//
//	res, _, err := pearson.Analyze(os.Stdin, sample.WithDelimiter(';'))
func Analyze(r io.Reader, opts ...sample.Option) (stats.Result, sample.Sample, error) {
	s, err := sample.Read(r, opts...)
	if err != nil {
		return stats.Result{}, sample.Sample{}, err
	}

	return stats.Compute(s), s, nil
}

// AnalyzeFile loads the file at path, decoding it first when it is compressed,
// and computes the statistics of the resulting sample.
//
// Returns errs.ErrSourceNotFound when path does not exist and errs.ErrSourceRead
// for any other I/O or decompression failure.
func AnalyzeFile(path string, opts ...sample.Option) (stats.Result, sample.Sample, error) {
	s, err := sample.Load(path, opts...)
	if err != nil {
		return stats.Result{}, sample.Sample{}, err
	}

	return stats.Compute(s), s, nil
}

// WriteReport renders res to w, attaching the digest of s to structured formats.
func WriteReport(w io.Writer, res stats.Result, s sample.Sample, opts ...report.Option) error {
	all := append([]report.Option{report.WithDigest(s.Digest())}, opts...)
	return report.Write(w, res, all...)
}
