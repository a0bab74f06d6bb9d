// Package log provides structured generation logging for the bufr table
// toolchain.
//
// This package defines the Logger interface and Event types for capturing
// generation run events: run lifecycle, per-table progress, skipped rows and
// fatal diagnostics. It is separate from operational logging (slog) - the
// event trace is a complete machine-readable record of one generation run.
//
// # Basic Usage
//
// Tools configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For auditing: write to binary file
//	logger, _ := log.NewFileLogger("tablegen.blog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with .blog extension. The bufr-log CLI tool
// provides viewing, filtering, export and statistics.
package log
