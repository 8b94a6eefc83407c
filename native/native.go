package native

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/fs/internal/pathutil"
)

const (
	defaultDirPerm  fs.FileMode = 0o755
	defaultFilePerm fs.FileMode = 0o644
)

// Platform is the host operating system's core.Platform.
type Platform struct {
	cfg config
}

// Option configures a Platform.
type Option func(*config)

type config struct {
	root     string
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// WithRoot resolves relative paths under dir instead of the process
// working directory. Absolute paths are used as given.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = filepath.FromSlash(dir)
	}
}

// WithDirPerm sets the permission bits for directories created by Mkdir
// (before umask).
func WithDirPerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.dirPerm = perm
	}
}

// WithFilePerm sets the permission bits for files created by OpenFile
// (before umask).
func WithFilePerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.filePerm = perm
	}
}

// New creates a Platform for the host operating system.
func New(opts ...Option) *Platform {
	cfg := config{
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Platform{cfg: cfg}
}

// Type returns FSTypeLocal.
func (p *Platform) Type() core.FSType {
	return core.FSTypeLocal
}

// Root returns the directory relative paths are resolved against,
// or "" for the process working directory.
func (p *Platform) Root() string {
	return p.cfg.root
}

// resolve converts a neutral path into a host path. Both '/' and '\' are
// separators on every host.
func (p *Platform) resolve(name string) string {
	native := filepath.FromSlash(pathutil.Normalize(name))
	switch {
	case native == "" && p.cfg.root == "":
		return "."
	case native == "":
		return p.cfg.root
	case filepath.IsAbs(native) || p.cfg.root == "":
		return native
	default:
		return filepath.Join(p.cfg.root, native)
	}
}

// Stat returns metadata for name, following symbolic links.
func (p *Platform) Stat(name string) (core.Stat, error) {
	return statPath(p.resolve(name), true)
}

// Lstat returns metadata for name without following a final symbolic link.
func (p *Platform) Lstat(name string) (core.Stat, error) {
	return statPath(p.resolve(name), false)
}

// OpenFile opens name with the given access and creation flags.
// Opening a directory fails with core.ErrIsDirectory.
func (p *Platform) OpenFile(name string, access core.AccessFlags, creation core.CreationFlags) (core.RawFile, error) {
	flag, err := core.OSFlags(access, creation)
	if err != nil {
		return nil, err
	}

	path := p.resolve(name)
	f, err := os.OpenFile(path, flag, p.cfg.filePerm)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: core.ErrIsDirectory}
	}
	return f, nil
}

// Mkdir creates a single directory.
func (p *Platform) Mkdir(name string) error {
	return os.Mkdir(p.resolve(name), p.cfg.dirPerm)
}

// Rmdir removes an empty directory.
func (p *Platform) Rmdir(name string) error {
	return rmdir(p.resolve(name))
}

// Unlink removes a non-directory entry.
func (p *Platform) Unlink(name string) error {
	return unlink(p.resolve(name))
}

// Rename atomically renames oldpath to newpath.
func (p *Platform) Rename(oldpath, newpath string) error {
	return os.Rename(p.resolve(oldpath), p.resolve(newpath))
}

// Compile-time interface checks.
var (
	_ core.Platform  = (*Platform)(nil)
	_ core.RawFile   = (*os.File)(nil)
	_ core.Truncater = (*os.File)(nil)
	_ core.Syncer    = (*os.File)(nil)
)
