package billy

import (
	"io"
	"io/fs"
	"os"

	"github.com/jmgilman/go/fs/core"
)

// directory hands out a listing one entry at a time.
type directory struct {
	infos  []os.FileInfo
	closed bool
}

// OpenDir opens name for enumeration.
func (p *Platform) OpenDir(name string) (core.RawDir, error) {
	name = resolve(name)
	info, err := p.bfs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "opendir", Path: name, Err: core.ErrNotDirectory}
	}

	infos, err := p.bfs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	return &directory{infos: infos}, nil
}

func (d *directory) Next() (core.DirEntry, error) {
	if d.closed {
		return core.DirEntry{}, fs.ErrClosed
	}
	if len(d.infos) == 0 {
		return core.DirEntry{}, io.EOF
	}

	info := d.infos[0]
	d.infos = d.infos[1:]
	return core.DirEntry{
		Name:        info.Name(),
		IsFile:      info.Mode().IsRegular(),
		IsDirectory: info.IsDir(),
	}, nil
}

func (d *directory) Close() error {
	if d.closed {
		return fs.ErrClosed
	}
	d.closed = true
	d.infos = nil
	return nil
}

// Mkdir creates a single directory. Unlike billy's MkdirAll, this fails if
// the directory exists or its parent does not.
func (p *Platform) Mkdir(name string) error {
	name = resolve(name)
	if _, err := p.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if err := p.requireParent("mkdir", name); err != nil {
		return err
	}
	if err := p.bfs.MkdirAll(name, p.cfg.dirPerm); err != nil {
		return err
	}
	if p.cfg.dirPermSet && p.chmod != nil {
		return p.chmod(name, p.cfg.dirPerm)
	}
	return nil
}

// Rmdir removes an empty directory.
func (p *Platform) Rmdir(name string) error {
	name = resolve(name)
	info, err := p.bfs.Lstat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: name, Err: core.ErrNotDirectory}
	}

	children, err := p.bfs.ReadDir(name)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return &fs.PathError{Op: "rmdir", Path: name, Err: core.ErrNotEmpty}
	}
	return p.bfs.Remove(name)
}
