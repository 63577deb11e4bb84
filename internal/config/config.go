// Package config loads the optional YAML file holding command defaults.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/juninhoojl/pearson-correlation-coefficient/format"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/log"
	"github.com/juninhoojl/pearson-correlation-coefficient/report"
	"github.com/juninhoojl/pearson-correlation-coefficient/sample"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultDelimiter   = ","
	DefaultCompression = "auto"
	DefaultFormat      = "text"
	DefaultLogLevel    = "warn"
)

// Config is the top-level configuration of the pearson command.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig controls ingestion.
type InputConfig struct {
	// Delimiter is the single-character field separator.
	Delimiter string `yaml:"delimiter"`

	// Compression is one of: auto | none | zstd | s2 | lz4 | gzip.
	Compression string `yaml:"compression"`

	// AllowNonFinite accepts NaN and ±Inf fields instead of reporting them as malformed.
	AllowNonFinite bool `yaml:"allow_non_finite"`

	// MaxLineLength is the longest accepted line in bytes.
	MaxLineLength int `yaml:"max_line_length"`
}

// ReportConfig controls rendering.
type ReportConfig struct {
	// Format is one of: text | json | yaml.
	Format string `yaml:"format"`

	// Precision is the number of decimals for the coefficient and means.
	Precision int `yaml:"precision"`

	// Digest adds the sample digest to structured reports.
	Digest bool `yaml:"digest"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	// Level is one of: debug | info | warn | error | off.
	Level string `yaml:"level"`

	// JSON switches diagnostics from console lines to JSON objects.
	JSON bool `yaml:"json"`
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter:     DefaultDelimiter,
			Compression:   DefaultCompression,
			MaxLineLength: sample.DefaultMaxLineLength,
		},
		Report: ReportConfig{
			Format:    DefaultFormat,
			Precision: report.DefaultPrecision,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that has a constrained value set.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("config: input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if _, err := format.ParseCompression(c.Input.Compression); err != nil {
		return fmt.Errorf("config: input.compression: %w", err)
	}
	if c.Input.MaxLineLength <= 0 {
		return fmt.Errorf("config: input.max_line_length must be positive")
	}
	if _, err := format.ParseReportFormat(c.Report.Format); err != nil {
		return fmt.Errorf("config: report.format: %w", err)
	}
	if c.Report.Precision < 0 || c.Report.Precision > report.MaxPrecision {
		return fmt.Errorf("config: report.precision must be within [0, %d]", report.MaxPrecision)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}

// ReaderOptions converts the input section into sample options.
// The config must have passed Validate.
func (c *Config) ReaderOptions() []sample.Option {
	delimiter, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	compression, _ := format.ParseCompression(c.Input.Compression)

	return []sample.Option{
		sample.WithDelimiter(delimiter),
		sample.WithCompression(compression),
		sample.WithAllowNonFinite(c.Input.AllowNonFinite),
		sample.WithMaxLineLength(c.Input.MaxLineLength),
	}
}

// ReportOptions converts the report section into report options.
// The config must have passed Validate.
func (c *Config) ReportOptions() []report.Option {
	f, _ := format.ParseReportFormat(c.Report.Format)

	return []report.Option{
		report.WithFormat(f),
		report.WithPrecision(c.Report.Precision),
	}
}
