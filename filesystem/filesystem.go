package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"log/slog"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
	"github.com/jmgilman/go/fs/handle"
	"github.com/jmgilman/go/fs/internal/pathutil"
	"github.com/jmgilman/go/fs/native"
	"github.com/jmgilman/go/fs/walk"
)

// FileSystem is the filesystem facade.
type FileSystem struct {
	p   core.Platform
	log *slog.Logger
}

// Option configures a FileSystem.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for directory creation, skipped subtrees
// and removal steps. Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a facade over p. It panics if p is nil.
func New(p core.Platform, opts ...Option) *FileSystem {
	if p == nil {
		panic("filesystem: nil platform")
	}

	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileSystem{p: p, log: cfg.logger}
}

// NewLocal creates a facade over the host operating system, resolving
// relative paths against the process working directory.
func NewLocal(opts ...Option) *FileSystem {
	return New(native.New(), opts...)
}

// Platform returns the platform the facade dispatches onto.
func (fsys *FileSystem) Platform() core.Platform {
	return fsys.p
}

func (fsys *FileSystem) walkOptions() []walk.Option {
	return []walk.Option{walk.WithLogger(fsys.log)}
}

// Open opens path with explicit access and creation flags.
func (fsys *FileSystem) Open(path string, access core.AccessFlags, creation core.CreationFlags) (*handle.File, error) {
	return handle.OpenFile(fsys.p, pathutil.Normalize(path), access, creation)
}

// OpenForInput opens an existing file for reading.
func (fsys *FileSystem) OpenForInput(path string) (core.InputStream, error) {
	f, err := fsys.Open(path, core.AccessRead, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenForOutput opens a file for writing with the given creation flags.
func (fsys *FileSystem) OpenForOutput(path string, creation core.CreationFlags) (core.OutputStream, error) {
	f, err := fsys.Open(path, core.AccessWrite, creation)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenForIO opens a file for reading and writing with the given creation
// flags.
func (fsys *FileSystem) OpenForIO(path string, creation core.CreationFlags) (core.IOStream, error) {
	f, err := fsys.Open(path, core.AccessReadWrite, creation)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile returns the whole contents of path.
func (fsys *FileSystem) ReadFile(path string) ([]byte, error) {
	f, err := fsys.Open(path, core.AccessRead, 0)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}

// WriteFile writes data to path, creating or truncating it.
func (fsys *FileSystem) WriteFile(path string, data []byte) (err error) {
	f, err := fsys.Open(path, core.AccessWrite, core.Create|core.Truncate)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

// CreateDir creates path. With recursive set, missing ancestors are created
// first; existing ancestors are accepted. Whether an already existing final
// directory is an error is up to the platform (both bundled platforms
// report ALREADY_EXISTS).
func (fsys *FileSystem) CreateDir(path string, recursive bool) error {
	path = pathutil.Normalize(path)
	if path == "" {
		return fserrors.WithContext(fserrors.New(fserrors.CodeInvalidInput, "empty directory path"), "op", "mkdir")
	}

	if recursive {
		if err := fsys.ensureDir(pathutil.ParentOf(path)); err != nil {
			return err
		}
	}

	fsys.log.Debug("creating directory", "path", path)
	return core.Wrap("mkdir", path, fsys.p.Mkdir(path))
}

// ensureDir creates path and its ancestors unless they already exist.
func (fsys *FileSystem) ensureDir(path string) error {
	if path == "" {
		return nil
	}

	if st, err := fsys.p.Stat(path); err == nil {
		if st.IsDirectory {
			return nil
		}
		return core.Wrap("mkdir", path, &fs.PathError{Op: "mkdir", Path: path, Err: core.ErrNotDirectory})
	}

	if err := fsys.ensureDir(pathutil.ParentOf(path)); err != nil {
		return err
	}

	fsys.log.Debug("creating directory", "path", path)
	err := fsys.p.Mkdir(path)
	if errors.Is(err, fs.ErrExist) {
		// Created concurrently.
		return nil
	}
	return core.Wrap("mkdir", path, err)
}

// OpenDir opens path for enumeration.
func (fsys *FileSystem) OpenDir(path string) (*handle.Directory, error) {
	return handle.OpenDir(fsys.p, pathutil.Normalize(path))
}

// Stat returns metadata for path, following symbolic links.
func (fsys *FileSystem) Stat(path string) (core.Stat, error) {
	path = pathutil.Normalize(path)
	st, err := fsys.p.Stat(path)
	return st, core.Wrap("stat", path, err)
}

// Lstat returns metadata for path without following a final symbolic link.
func (fsys *FileSystem) Lstat(path string) (core.Stat, error) {
	path = pathutil.Normalize(path)
	st, err := fsys.p.Lstat(path)
	return st, core.Wrap("lstat", path, err)
}

// Exists reports whether path exists. Failures other than NOT_FOUND are
// returned as errors.
func (fsys *FileSystem) Exists(path string) (bool, error) {
	_, err := fsys.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case fserrors.HasCode(err, fserrors.CodeNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Move atomically renames path to newPath. Moves the platform refuses, such
// as across filesystems, fail and are not emulated.
func (fsys *FileSystem) Move(path, newPath string) error {
	path, newPath = pathutil.Normalize(path), pathutil.Normalize(newPath)
	err := fsys.p.Rename(path, newPath)
	if err == nil {
		return nil
	}
	return fserrors.WithContext(core.Wrap("rename", path, err), "newPath", newPath)
}

// Remove deletes path; see walk.Remove. Roots ("", "/", "C:", UNC shares)
// and paths climbing above the working directory are refused.
func (fsys *FileSystem) Remove(path string, recursive bool) error {
	path = pathutil.Normalize(path)
	switch {
	case pathutil.IsRoot(path):
		return fserrors.WithContextMap(fserrors.New(fserrors.CodeInvalidInput, "refusing to remove a root"),
			map[string]any{"op": "remove", "path": path})
	case pathutil.Escapes(path):
		return fserrors.WithContextMap(fserrors.New(fserrors.CodeInvalidInput, "refusing to remove outside the root"),
			map[string]any{"op": "remove", "path": path})
	}
	return walk.Remove(fsys.p, path, recursive, fsys.walkOptions()...)
}

// FindFiles lazily enumerates baseDir; see walk.FindFiles.
func (fsys *FileSystem) FindFiles(baseDir string, recursive bool) iter.Seq2[core.DirEntry, error] {
	return walk.FindFiles(fsys.p, pathutil.Normalize(baseDir), recursive, fsys.walkOptions()...)
}

// FindMatching lazily enumerates the entries below baseDir matching a
// doublestar pattern; see walk.FindMatching.
func (fsys *FileSystem) FindMatching(baseDir, pattern string, recursive bool) (iter.Seq2[core.DirEntry, error], error) {
	return walk.FindMatching(fsys.p, pathutil.Normalize(baseDir), pattern, recursive, fsys.walkOptions()...)
}
