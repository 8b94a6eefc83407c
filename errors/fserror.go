package errors

import "fmt"

// fsError is the concrete implementation of FSError.
// It is private to enforce construction through package functions.
type fsError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *fsError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *fsError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *fsError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *fsError) Message() string {
	return e.message
}

// Context returns a copy of the context map.
func (e *fsError) Context() map[string]any {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fsError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
