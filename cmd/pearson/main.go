// Package main contains the pearson command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	pearson "github.com/juninhoojl/pearson-correlation-coefficient"
	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/config"
	"github.com/juninhoojl/pearson-correlation-coefficient/internal/log"
	"github.com/juninhoojl/pearson-correlation-coefficient/report"
)

const usageLine = "Usage: pearson [flags] <csv_file_path>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps its outcome to a process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := BuildRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errs.ErrUsage):
		fmt.Fprintf(stderr, "Error: %v\n%s\n", err, usageLine)
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

type flags struct {
	configFile     string
	format         string
	precision      int
	compression    string
	delimiter      string
	allowNonFinite bool
	logLevel       string
	logJSON        bool
	digest         bool
}

// BuildRootCmd returns the pearson command writing reports to stdout and
// diagnostics to stderr.
func BuildRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "pearson [flags] <csv_file_path>",
		Short:         "Compute the Pearson correlation coefficient of paired x,y values",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected 1 argument, got %d", errs.ErrUsage, len(args))
			}
			if args[0] == "" {
				return fmt.Errorf("%w: file path cannot be empty", errs.ErrUsage)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}

			return analyze(cfg, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errs.ErrUsage, err)
	})

	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.format, "format", "f", config.DefaultFormat, "report format: text, json or yaml")
	fs.IntVarP(&f.precision, "precision", "p", report.DefaultPrecision, "decimals for the coefficient and means")
	fs.StringVar(&f.compression, "compression", config.DefaultCompression, "input compression: auto, none, zstd, s2, lz4 or gzip")
	fs.StringVar(&f.delimiter, "delimiter", config.DefaultDelimiter, "single-character field delimiter")
	fs.BoolVar(&f.allowNonFinite, "allow-non-finite", false, "accept NaN and Inf values")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "diagnostic level: debug, info, warn, error or off")
	fs.BoolVar(&f.logJSON, "log-json", false, "write diagnostics as JSON")
	fs.BoolVar(&f.digest, "digest", false, "include the sample digest in json and yaml reports")

	return cmd
}

// loadConfig reads the config file, when one is given, and overlays the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		var err error
		if cfg, err = config.Load(f.configFile); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Report.Format = f.format
	}
	if changed("precision") {
		cfg.Report.Precision = f.precision
	}
	if changed("digest") {
		cfg.Report.Digest = f.digest
	}
	if changed("compression") {
		cfg.Input.Compression = f.compression
	}
	if changed("delimiter") {
		cfg.Input.Delimiter = f.delimiter
	}
	if changed("allow-non-finite") {
		cfg.Input.AllowNonFinite = f.allowNonFinite
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-json") {
		cfg.Log.JSON = f.logJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUsage, err)
	}

	return cfg, nil
}

func analyze(cfg *config.Config, path string, stdout, stderr io.Writer) error {
	log.SetOutput(stderr, !cfg.Log.JSON)
	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetLevel(level)

	res, s, err := pearson.AnalyzeFile(path, cfg.ReaderOptions()...)
	if err != nil {
		return err
	}

	log.Logger().Debug().
		Str("path", path).
		Int("n", res.N).
		Str("degeneracy", res.Degeneracy.String()).
		Msg("analysis finished")

	opts := cfg.ReportOptions()
	if cfg.Report.Digest {
		return pearson.WriteReport(stdout, res, s, opts...)
	}

	return report.Write(stdout, res, opts...)
}
