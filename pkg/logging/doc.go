// Package logging provides structured logging utilities for fileversion.
//
// # Overview
//
// This package wraps the standard library slog package with defaults shared
// by every fileversion command: JSON output on stderr, module and version
// attributes on every record, and source locations for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: file reads, writes and attribute changes, with source location
//   - INFO: command results (default)
//   - WARN/WARNING: best-effort cleanup failures
//   - ERROR: failed operations
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("fileversion", version, "debug")
//	    slog.Info("version incremented", "path", path, "version", v.String())
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug fileversion increment --file VERSION
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "version incremented",
//	    "module": "fileversion",
//	    "version": "v1.0.0",
//	    "path": "VERSION"
//	}
package logging
