// Package errors provides structured error handling for filesystem operations.
//
// Every failure surfaced by the filesystem layer carries an ErrorCode that
// identifies what went wrong (the path is missing, access was denied, a handle
// was misused, the platform failed) while keeping the original platform error
// reachable through errors.Is, errors.As and errors.Unwrap.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidState, "file not opened for reading")
//	err := errors.Newf(errors.CodeInvalidInput, "empty path for %s", op)
//
// Wrapping platform errors:
//
//	if err := os.Mkdir(path, 0o755); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "mkdir failed")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", path)
//	err = errors.WithContextMap(err, map[string]any{"op": "rmdir", "child": name})
//
// Inspecting errors:
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // ...
//	}
//
// # Error Classification
//
// Errors are classified as either retryable or permanent. Only CodeIO is
// retryable by default; a missing path or a denied permission will not fix
// itself. The classification is preserved when wrapping; IsRetryable reports
// it.
//
// # Standard Library Compatibility
//
// The wrapped cause stays in the chain, so sentinel checks keep working:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // missing path
//	}
//
// Is and As are re-exported for convenience so callers importing this package
// do not need a second import of the standard errors package.
package errors
