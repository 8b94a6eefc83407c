// Package errors provides structured error handling for filesystem operations.
// It extends Go's standard error handling with error codes, retry classification,
// context preservation, and JSON rendering.
package errors

// ErrorCode represents a specific filesystem error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Existence errors.

	// CodeNotFound indicates a path or one of its parents does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target path already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Type errors.

	// CodeNotDirectory indicates a directory operation was applied to a non-directory.
	CodeNotDirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsDirectory indicates a file operation was applied to a directory.
	CodeIsDirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeNotEmpty indicates a non-recursive removal hit a directory with children.
	CodeNotEmpty ErrorCode = "NOT_EMPTY"

	// Permission errors.

	// CodeForbidden indicates the platform denied access to the path.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Usage errors.

	// CodeInvalidInput indicates the provided path or flags are malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidState indicates a handle was used in a way its state does not allow,
	// such as reading from an output-only file or iterating a consumed directory.
	CodeInvalidState ErrorCode = "INVALID_STATE"

	// Platform errors.

	// CodeIO indicates the platform failed the operation for a reason other than
	// existence or permission.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeNotImplemented indicates the operation has no primitive on this platform.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// System errors.

	// CodeInternal indicates an internal invariant was violated.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
