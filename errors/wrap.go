package errors

import "errors"

// Wrap wraps an error with a code and message while preserving the original error.
//
// If the wrapped error is already an FSError, its classification is preserved.
// Otherwise the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := p.Rename(from, to); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "move failed")
//	}
func Wrap(err error, code ErrorCode, message string) FSError {
	return WrapWithContext(err, code, message, nil)
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeNotFound, "stat failed", map[string]any{
//	    "op":   "stat",
//	    "path": path,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) FSError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var fsErr FSError
	if errors.As(err, &fsErr) {
		classification = fsErr.Classification()
	}

	return &fsError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
