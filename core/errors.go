package core

import (
	"errors"
	"io/fs"

	fserrors "github.com/jmgilman/go/fs/errors"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed handle.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation has no primitive on the platform.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotDirectory is returned when a directory operation targets a non-directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotEmpty is returned when removing a directory that still has entries.
	ErrNotEmpty = errors.New("directory not empty")
)

// kindError attaches a sentinel to a platform error without changing its text.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string   { return e.err.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

// Mark returns err with kind added to its chain, so errors.Is(result, kind)
// holds while the message stays that of err. Returns nil if err is nil.
func Mark(err, kind error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

// Classify maps an error chain onto an error code.
// Errors that match no known condition classify as CodeIO.
func Classify(err error) fserrors.ErrorCode {
	switch {
	case err == nil:
		return fserrors.CodeUnknown
	// Marked kinds first: ENOTEMPTY also matches fs.ErrExist.
	case errors.Is(err, ErrNotEmpty):
		return fserrors.CodeNotEmpty
	case errors.Is(err, ErrNotDirectory):
		return fserrors.CodeNotDirectory
	case errors.Is(err, ErrIsDirectory):
		return fserrors.CodeIsDirectory
	case errors.Is(err, fs.ErrNotExist):
		return fserrors.CodeNotFound
	case errors.Is(err, fs.ErrExist):
		return fserrors.CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return fserrors.CodeForbidden
	case errors.Is(err, ErrUnsupported), errors.Is(err, errors.ErrUnsupported):
		return fserrors.CodeNotImplemented
	case errors.Is(err, fs.ErrClosed):
		return fserrors.CodeInvalidState
	case errors.Is(err, fs.ErrInvalid):
		return fserrors.CodeInvalidInput
	}

	var fsErr fserrors.FSError
	if errors.As(err, &fsErr) {
		return fsErr.Code()
	}
	return fserrors.CodeIO
}

// Wrap converts a platform error into a coded error carrying the operation
// and path as context. Errors that already carry a code keep it and gain the
// context. Returns nil if err is nil.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}

	ctx := map[string]any{"op": op, "path": path}

	var fsErr fserrors.FSError
	if errors.As(err, &fsErr) {
		return fserrors.WithContextMap(err, ctx)
	}
	return fserrors.WrapWithContext(err, Classify(err), op+" failed", ctx)
}
