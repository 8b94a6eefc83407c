package billy

import (
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/fs/core"
)

// OpenFile opens name with the given access and creation flags.
func (p *Platform) OpenFile(name string, access core.AccessFlags, creation core.CreationFlags) (core.RawFile, error) {
	flag, err := core.OSFlags(access, creation)
	if err != nil {
		return nil, err
	}

	name = resolve(name)
	info, err := p.bfs.Stat(name)
	switch {
	case err == nil && info.IsDir():
		return nil, &fs.PathError{Op: "open", Path: name, Err: core.ErrIsDirectory}
	case err != nil && flag&os.O_CREATE != 0:
		if err := p.requireParent("open", name); err != nil {
			return nil, err
		}
	}

	f, err := p.bfs.OpenFile(name, flag, p.cfg.filePerm)
	if err != nil {
		return nil, err
	}
	return &file{file: f, name: name}, nil
}

// file wraps billy.File. It keeps the name given to OpenFile since
// billy.File.Name() differs between backends.
type file struct {
	file billy.File
	name string
}

func (f *file) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *file) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *file) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *file) Close() error {
	return f.file.Close()
}

// Name returns the path the file was opened with.
func (f *file) Name() string {
	return f.name
}

// Truncate implements core.Truncater.
func (f *file) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync implements core.Syncer.
// Backends without Sync (e.g., memfs) treat it as a no-op.
func (f *file) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.RawFile   = (*file)(nil)
	_ core.Truncater = (*file)(nil)
	_ core.Syncer    = (*file)(nil)
)
