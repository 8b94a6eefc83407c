// Package filesystem is the single entry point for filesystem operations.
//
// A FileSystem dispatches onto an injected core.Platform. It holds no
// mutable state of its own, so one value can serve any number of callers;
// handles it returns are owned by the caller that opened them.
//
// Paths may use forward slashes or the host's native separators and are
// normalized before reaching the platform.
//
// Usage:
//
//	fsys := filesystem.NewLocal()
//
//	if err := fsys.CreateDir("build/out", true); err != nil {
//	    return err
//	}
//	if err := fsys.WriteFile("build/out/report.txt", data); err != nil {
//	    return err
//	}
//	for entry, err := range fsys.FindFiles("build", true) {
//	    ...
//	}
//	if err := fsys.Remove("build", true); err != nil {
//	    return err
//	}
//
// For tests, build the facade over an in-memory platform:
//
//	fsys := filesystem.New(billy.NewMemory())
//
// # Errors
//
// Every failure is an errors.FSError carrying a code (NOT_FOUND, FORBIDDEN,
// ALREADY_EXISTS, NOT_EMPTY, NOT_A_DIRECTORY, INVALID_STATE, IO_ERROR, ...)
// and the operation and path as context. The platform error stays in the
// chain, so errors.Is(err, fs.ErrNotExist) keeps working.
package filesystem
