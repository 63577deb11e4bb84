// Package errs defines the sentinel errors shared across the pearson packages.
//
// Callers distinguish error kinds with errors.Is; every package wraps these
// sentinels with fmt.Errorf("...: %w") to attach context such as a file path
// or a line number.
package errs

import "errors"

var (
	// ErrUsage indicates the command line was malformed (wrong argument count or empty path).
	ErrUsage = errors.New("usage error")

	// ErrSourceNotFound indicates the input source does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrSourceRead indicates the input source exists but could not be read or decoded.
	ErrSourceRead = errors.New("source read failed")

	// ErrMalformedLine indicates a two-field line whose fields are not numeric.
	ErrMalformedLine = errors.New("invalid format")
	// ErrNonFinite indicates a field parsed as NaN or ±Inf while non-finite values are rejected.
	ErrNonFinite = errors.New("non-finite value")

	// ErrInvalidCompression indicates an unknown or unsupported compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrInvalidFormat indicates an unknown report format.
	ErrInvalidFormat = errors.New("invalid report format")
	// ErrInvalidOption indicates an option value outside its accepted range.
	ErrInvalidOption = errors.New("invalid option")
)
