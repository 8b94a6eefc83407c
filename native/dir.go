package native

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/jmgilman/go/fs/core"
)

// readBatch is the number of entries fetched from the operating system per
// readdir call. Entries are handed out one at a time from the batch.
const readBatch = 64

// dirReader is the part of *os.File a directory iteration needs.
type dirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// directory is an open directory iteration context.
type directory struct {
	f    dirReader
	buf  []fs.DirEntry
	err  error
	done bool
}

// OpenDir opens name for enumeration.
// A path that exists but is not a directory fails with core.ErrNotDirectory.
func (p *Platform) OpenDir(name string) (core.RawDir, error) {
	path := p.resolve(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: core.ErrNotDirectory}
	}

	return &directory{f: f}, nil
}

// Next returns the next entry in the order the operating system reports.
// Entries read together with a failure are handed out before the failure.
func (d *directory) Next() (core.DirEntry, error) {
	for len(d.buf) == 0 {
		if d.err != nil {
			err := d.err
			d.err = nil
			return core.DirEntry{}, err
		}
		if d.done {
			return core.DirEntry{}, io.EOF
		}

		batch, err := d.f.ReadDir(readBatch)
		d.buf = batch
		if err != nil {
			d.done = true
			if !errors.Is(err, io.EOF) {
				d.err = err
			}
		}
	}

	de := d.buf[0]
	d.buf = d.buf[1:]
	return entryOf(de), nil
}

// Close releases the directory descriptor.
func (d *directory) Close() error {
	return d.f.Close()
}

// entryOf classifies a directory entry without following links.
func entryOf(de fs.DirEntry) core.DirEntry {
	t := de.Type()
	return core.DirEntry{
		Name:        de.Name(),
		IsFile:      t.IsRegular(),
		IsDirectory: t.IsDir(),
	}
}
