package sample

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/juninhoojl/pearson-correlation-coefficient/compress"
	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
	"github.com/juninhoojl/pearson-correlation-coefficient/format"
)

// LineError reports a malformed line. It unwraps to errs.ErrMalformedLine,
// and additionally to errs.ErrNonFinite for rejected NaN/Inf values.
type LineError struct {
	// Line is the 1-based line number in the source.
	Line int
	// Text is the raw line content.
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if errors.Is(e.Err, errs.ErrNonFinite) {
		return fmt.Sprintf("Error reading line %d: Invalid format (non-finite value).", e.Line)
	}

	return fmt.Sprintf("Error reading line %d: Invalid format.", e.Line)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Load reads the file at path, decoding it first when it is compressed.
//
// Errors:
//   - errs.ErrSourceNotFound if path does not exist
//   - errs.ErrSourceRead if the file cannot be read or decoded
//
// No partial Sample is returned on error.
func Load(path string, opts ...Option) (Sample, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return Sample{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Sample{}, fmt.Errorf("%w: %s", errs.ErrSourceNotFound, path)
		}

		return Sample{}, fmt.Errorf("%w: %w", errs.ErrSourceRead, err)
	}

	compression := cfg.Compression
	if compression == format.CompressionAuto {
		compression = format.CompressionFromPath(path)
	}
	codec, err := compress.CreateCodec(compression, "input")
	if err != nil {
		return Sample{}, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %s: %w", errs.ErrSourceRead, path, err)
	}

	cfg.Logger.Debug().
		Str("path", path).
		Stringer("compression", compression).
		Int("bytes", len(raw)).
		Msg("source decoded")

	return read(bytes.NewReader(raw), cfg)
}

// Read ingests every line of r.
//
// Malformed lines are sent to the configured reporter and excluded from the
// result; only a failing reader aborts with errs.ErrSourceRead.
func Read(r io.Reader, opts ...Option) (Sample, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return Sample{}, err
	}

	return read(r, cfg)
}

// ReadLines ingests an in-memory sequence of lines. Line numbers follow slice positions.
func ReadLines(lines []string, opts ...Option) (Sample, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return Sample{}, err
	}

	ing := newIngester(cfg)
	for i, line := range lines {
		ing.line(i+1, line)
	}
	ing.finish()

	return ing.sample(), nil
}

func read(r io.Reader, cfg *ReaderConfig) (Sample, error) {
	scanner := bufio.NewScanner(r)
	bufSize := 64 * 1024
	if cfg.MaxLineLength < bufSize {
		bufSize = cfg.MaxLineLength
	}
	scanner.Buffer(make([]byte, 0, bufSize), cfg.MaxLineLength)

	ing := newIngester(cfg)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if lineNo == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		ing.line(lineNo, text)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Sample{}, fmt.Errorf("%w: line %d exceeds %d bytes", errs.ErrSourceRead, lineNo+1, cfg.MaxLineLength)
		}

		return Sample{}, fmt.Errorf("%w: %w", errs.ErrSourceRead, err)
	}
	ing.finish()

	return ing.sample(), nil
}

// ingester applies the line policy to one source.
type ingester struct {
	cfg       *ReaderConfig
	obs       []Observation
	delimiter string

	sawPair   bool
	lines     int
	skipped   int
	malformed int
}

func newIngester(cfg *ReaderConfig) *ingester {
	return &ingester{cfg: cfg, delimiter: string(cfg.Delimiter)}
}

func (g *ingester) line(lineNo int, text string) {
	g.lines++
	text = strings.TrimSuffix(text, "\r")

	fields := strings.Split(text, g.delimiter)
	if len(fields) != 2 {
		g.skipped++
		return
	}
	header := !g.sawPair
	g.sawPair = true

	x, errX := parseField(fields[0])
	y, errY := parseField(fields[1])
	if errX != nil || errY != nil {
		if header {
			g.skipped++
			return
		}
		g.report(lineNo, text, errs.ErrMalformedLine)

		return
	}

	if !g.cfg.AllowNonFinite && (!isFinite(x) || !isFinite(y)) {
		g.report(lineNo, text, fmt.Errorf("%w: %w", errs.ErrMalformedLine, errs.ErrNonFinite))
		return
	}

	g.obs = append(g.obs, Observation{X: x, Y: y})
}

func (g *ingester) report(lineNo int, text string, err error) {
	g.malformed++
	g.cfg.Reporter(&LineError{Line: lineNo, Text: text, Err: err})
}

func (g *ingester) finish() {
	g.cfg.Logger.Debug().
		Int("lines", g.lines).
		Int("observations", len(g.obs)).
		Int("skipped", g.skipped).
		Int("malformed", g.malformed).
		Msg("ingestion finished")
}

func (g *ingester) sample() Sample {
	return Sample{obs: g.obs}
}

func parseField(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
