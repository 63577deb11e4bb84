// Package sample ingests paired (x, y) observations from comma-delimited text.
//
// A Sample is the ordered collection of every valid line of a source. Lines
// are filtered rather than rejected, so a header row or stray blank lines do
// not abort ingestion:
//
//   - A line whose delimiter split does not yield exactly two fields is skipped silently.
//   - Both fields are trimmed and parsed as float64.
//   - The first two-field line that fails to parse is taken as the header row and
//     skipped silently (for example "x,y").
//   - Any later two-field line that fails to parse is a malformed line: a *LineError
//     carrying its 1-based line number is sent to the reporter and the line is skipped.
//   - NaN and ±Inf are malformed unless WithAllowNonFinite(true) is given.
//
// Only a source that cannot be opened or read fails ingestion as a whole:
//
//	s, err := sample.Load("data.csv")
//	if errors.Is(err, errs.ErrSourceNotFound) {
//	    // no statistics are produced
//	}
//
// Load decodes compressed files transparently (.gz, .zst, .s2, .lz4).
package sample
