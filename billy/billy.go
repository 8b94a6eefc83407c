package billy

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/fs/internal/pathutil"
)

const (
	defaultDirPerm  fs.FileMode = 0o755
	defaultFilePerm fs.FileMode = 0o644
)

// Platform adapts a billy.Filesystem to core.Platform.
type Platform struct {
	bfs billy.Filesystem
	typ core.FSType
	cfg config

	// chmod applies an explicit directory mode after creation; nil when
	// the filesystem already honours the perm passed to MkdirAll.
	chmod func(name string, mode fs.FileMode) error
}

// Option configures platform creation.
type Option func(*config)

type config struct {
	dirPerm    fs.FileMode
	dirPermSet bool
	filePerm   fs.FileMode
}

// WithDirPerm sets the permission bits for directories created by Mkdir.
// go-billy's osfs ignores the mode given to MkdirAll, so on NewLocal the
// bits are applied with chmod after creation and are not masked by umask.
func WithDirPerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.dirPerm = perm
		c.dirPermSet = true
	}
}

// WithFilePerm sets the permission bits for files created by OpenFile.
func WithFilePerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.filePerm = perm
	}
}

// New adapts bfs. All paths are resolved against the root of bfs.
func New(bfs billy.Filesystem, typ core.FSType, opts ...Option) *Platform {
	cfg := config{
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Platform{bfs: bfs, typ: typ, cfg: cfg}
	if c, ok := bfs.(billy.Change); ok {
		p.chmod = c.Chmod
	}
	return p
}

// NewLocal creates a go-billy-backed local platform rooted at root.
// Every path, including an absolute one, is resolved under root.
func NewLocal(root string, opts ...Option) *Platform {
	if root == "" {
		root = "/"
	}
	p := New(osfs.New(root), core.FSTypeLocal, opts...)
	if p.chmod == nil {
		p.chmod = func(name string, mode fs.FileMode) error {
			return os.Chmod(filepath.Join(root, filepath.FromSlash(name)), mode)
		}
	}
	return p
}

// NewMemory creates a go-billy-backed in-memory platform.
// The platform initially holds only an empty root directory.
func NewMemory(opts ...Option) *Platform {
	bfs := memfs.New()
	_ = bfs.MkdirAll("/", defaultDirPerm)
	return New(bfs, core.FSTypeMemory, opts...)
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (p *Platform) Unwrap() billy.Filesystem {
	return p.bfs
}

// Type returns the platform type given at construction.
func (p *Platform) Type() core.FSType {
	return p.typ
}

// resolve converts a neutral path into a billy path.
func resolve(name string) string {
	name = pathutil.Normalize(name)
	if name == "" {
		return "."
	}
	return name
}

// Stat returns metadata for name, following symbolic links.
func (p *Platform) Stat(name string) (core.Stat, error) {
	info, err := p.bfs.Stat(resolve(name))
	if err != nil {
		return core.Stat{}, err
	}
	return fromFileInfo(info), nil
}

// Lstat returns metadata for name without following a final symbolic link.
func (p *Platform) Lstat(name string) (core.Stat, error) {
	info, err := p.bfs.Lstat(resolve(name))
	if err != nil {
		return core.Stat{}, err
	}
	return fromFileInfo(info), nil
}

func fromFileInfo(info os.FileInfo) core.Stat {
	st := core.Stat{
		IsFile:      info.Mode().IsRegular(),
		IsDirectory: info.IsDir(),
		Created:     info.ModTime(),
		Modified:    info.ModTime(),
	}
	if st.IsFile {
		st.SizeInBytes = uint64(info.Size())
	}
	return st
}

// requireParent fails unless the parent directory of name exists.
func (p *Platform) requireParent(op, name string) error {
	parent := pathutil.ParentOf(name)
	if parent == "" {
		return nil
	}

	info, err := p.bfs.Stat(resolve(parent))
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotDirectory}
	}
	return nil
}

// Compile-time interface checks.
var _ core.Platform = (*Platform)(nil)
