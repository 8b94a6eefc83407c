package billy

import (
	"io/fs"

	"github.com/jmgilman/go/fs/core"
)

// Unlink removes a non-directory entry.
func (p *Platform) Unlink(name string) error {
	name = resolve(name)
	info, err := p.bfs.Lstat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "unlink", Path: name, Err: core.ErrIsDirectory}
	}
	return p.bfs.Remove(name)
}

// Rename renames oldpath to newpath. The parent of newpath must exist.
func (p *Platform) Rename(oldpath, newpath string) error {
	oldpath, newpath = resolve(oldpath), resolve(newpath)
	if _, err := p.bfs.Lstat(oldpath); err != nil {
		return err
	}
	if err := p.requireParent("rename", newpath); err != nil {
		return err
	}
	return p.bfs.Rename(oldpath, newpath)
}
