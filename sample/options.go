package sample

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
	"github.com/juninhoojl/pearson-correlation-coefficient/format"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/log"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/options"
)

// DefaultMaxLineLength bounds a single input line.
const DefaultMaxLineLength = 1 << 20

// ReaderConfig holds ingestion settings.
type ReaderConfig struct {
	Delimiter      rune
	AllowNonFinite bool
	MaxLineLength  int
	Compression    format.CompressionType
	Reporter       func(*LineError)
	Logger         zerolog.Logger
}

// Option is a functional option for ReaderConfig.
type Option = options.Option[*ReaderConfig]

func defaultReaderConfig() *ReaderConfig {
	return &ReaderConfig{
		Delimiter:     ',',
		MaxLineLength: DefaultMaxLineLength,
		Compression:   format.CompressionAuto,
		Logger:        *log.Logger(),
	}
}

func newReaderConfig(opts []Option) (*ReaderConfig, error) {
	cfg := defaultReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Reporter == nil {
		logger := cfg.Logger
		cfg.Reporter = func(e *LineError) {
			logger.Warn().Int("line", e.Line).Msg(e.Error())
		}
	}

	return cfg, nil
}

// WithDelimiter sets the field delimiter. Tab is accepted; letters, digits,
// other whitespace and the characters of a number literal are not.
func WithDelimiter(r rune) Option {
	return options.New(func(cfg *ReaderConfig) error {
		switch {
		case r == '\t':
		case r == utf8.RuneError, unicode.IsSpace(r), unicode.IsControl(r),
			unicode.IsLetter(r), unicode.IsDigit(r), strings.ContainsRune(".+-_", r):
			return fmt.Errorf("%w: delimiter %q", errs.ErrInvalidOption, r)
		}
		cfg.Delimiter = r

		return nil
	})
}

// WithAllowNonFinite controls whether NaN and ±Inf fields are accepted.
// By default they are reported as malformed lines.
func WithAllowNonFinite(allow bool) Option {
	return options.NoError(func(cfg *ReaderConfig) {
		cfg.AllowNonFinite = allow
	})
}

// WithMaxLineLength sets the longest accepted line in bytes.
func WithMaxLineLength(n int) Option {
	return options.New(func(cfg *ReaderConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max line length %d", errs.ErrInvalidOption, n)
		}
		cfg.MaxLineLength = n

		return nil
	})
}

// WithCompression forces the codec used by Load. CompressionAuto, the
// default, infers it from the file extension.
func WithCompression(c format.CompressionType) Option {
	return options.NoError(func(cfg *ReaderConfig) {
		cfg.Compression = c
	})
}

// WithReporter receives every malformed line instead of the logger.
func WithReporter(fn func(*LineError)) Option {
	return options.NoError(func(cfg *ReaderConfig) {
		cfg.Reporter = fn
	})
}

// WithLogger sets the logger used for malformed-line warnings and debug events.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(cfg *ReaderConfig) {
		cfg.Logger = l
	})
}
