package errors

import "errors"

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not an FSError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", "a/b/c")
func WithContext(err error, key string, value any) FSError {
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an FSError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]any) FSError {
	if err == nil {
		return nil
	}

	base := asFSError(err)
	merged := copyContext(base.Context())
	if merged == nil {
		merged = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &fsError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// asFSError returns the first FSError in err's chain, or converts err into one.
func asFSError(err error) FSError {
	var fsErr FSError
	if errors.As(err, &fsErr) {
		return fsErr
	}
	return &fsError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
