// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The codes map the failure taxonomy of a version file operation:
// FORMAT, INVALID_ACTION, IO and OVERFLOW.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to write version file",
//	    err,
//	    map[string]any{
//	        "path":    path,
//	        "version": next.String(),
//	    },
//	)
//
// Use CodeOf to recover the code from a wrapped error:
//
//	if errors.CodeOf(err) == errors.ErrCodeFormat {
//	    // stored content is malformed
//	}
package errors
