package errors

import "fmt"

// New creates a new FSError with the given code and message.
// The classification is determined by the error code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidState, "directory contents already consumed")
func New(code ErrorCode, message string) FSError {
	return &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new FSError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "unknown access flags: %d", flags)
func Newf(code ErrorCode, format string, args ...any) FSError {
	return New(code, fmt.Sprintf(format, args...))
}
