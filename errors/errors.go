package errors

// FSError extends the standard error interface with structured information.
//
// FSError provides an error code for categorization, a classification for
// retry logic, contextual metadata such as the operation and path, and
// compatibility with errors.Is, errors.As and errors.Unwrap.
type FSError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only copy.
	// Returns nil if no context has been attached.
	Context() map[string]any

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
