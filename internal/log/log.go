// Package log provides the process-wide zerolog logger.
//
// Library packages accept a zerolog.Logger through their options and fall back
// to Logger(); the command sets the output and level once at startup.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	SetOutput(os.Stderr, false)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Logger returns the zerolog Logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// SetOutput replaces the global logger with one writing to w. With console
// set, events are rendered as "LEVEL message key=value" lines without
// timestamps; otherwise as JSON objects.
func SetOutput(w io.Writer, console bool) {
	var l zerolog.Logger
	if console {
		l = zerolog.New(NewConsoleWriter(w))
	} else {
		l = zerolog.New(w).With().Timestamp().Logger()
	}
	log.Logger = l
	zerolog.DefaultContextLogger = &l
}

// NewConsoleWriter returns a human-oriented writer for diagnostics on a terminal.
func NewConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
}

// GetLevel returns the minimum global log level.
func GetLevel() zerolog.Level {
	return zerolog.GlobalLevel()
}

// SetLevel sets the minimum global log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ParseLevel maps a level name (debug, info, warn, error, disabled) to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none":
		return zerolog.Disabled, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log: %w", err)
	}

	return level, nil
}
