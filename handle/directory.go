package handle

import (
	"errors"
	"io"
	"iter"
	"runtime"
	"sync/atomic"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
)

// Directory is an open directory.
type Directory struct {
	res      *resource
	raw      core.RawDir
	cleanup  runtime.Cleanup
	path     string
	consumed atomic.Bool
}

// OpenDir opens path on p for enumeration. It fails when path is missing or
// is not a directory; no handle is allocated on failure.
func OpenDir(p core.DirPlatform, path string) (*Directory, error) {
	raw, err := p.OpenDir(path)
	if err != nil {
		return nil, core.Wrap("opendir", path, err)
	}

	d := &Directory{
		res:  &resource{c: raw},
		raw:  raw,
		path: path,
	}
	d.cleanup = track(d, d.res)
	return d, nil
}

// Path returns the path the directory was opened with.
func (d *Directory) Path() string {
	return d.path
}

// Contents returns the directory entries in platform-native order. Entry
// names are bare names.
//
// The sequence can be ranged over once. A read failure is yielded once as
// the final element. Ranging again yields a single INVALID_STATE error.
func (d *Directory) Contents() iter.Seq2[core.DirEntry, error] {
	return func(yield func(core.DirEntry, error) bool) {
		if !d.consumed.CompareAndSwap(false, true) {
			yield(core.DirEntry{}, fserrors.WithContext(
				fserrors.New(fserrors.CodeInvalidState, "directory contents can only be read once"),
				"path", d.path,
			))
			return
		}
		if d.res.closed.Load() {
			yield(core.DirEntry{}, errClosed("directory", d.path))
			return
		}

		for {
			entry, err := d.raw.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(core.DirEntry{}, core.Wrap("readdir", d.path, err))
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Close releases the directory. Closing a closed directory is a no-op.
func (d *Directory) Close() error {
	d.cleanup.Stop()
	return core.Wrap("closedir", d.path, d.res.release())
}
