package handle

import (
	"errors"
	"io"
	"runtime"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
)

// File is an open file.
type File struct {
	res     *resource
	raw     core.RawFile
	cleanup runtime.Cleanup
	meta    core.MetadataPlatform
	name    string
	access  core.AccessFlags
}

// Opener is the subset of a platform a File needs.
type Opener interface {
	core.FilePlatform
	core.MetadataPlatform
}

// OpenFile opens name on p. No handle is allocated on failure.
func OpenFile(p Opener, name string, access core.AccessFlags, creation core.CreationFlags) (*File, error) {
	raw, err := p.OpenFile(name, access, creation)
	if err != nil {
		return nil, fserrors.WithContextMap(core.Wrap("open", name, err), map[string]any{
			"access":      access.String(),
			"disposition": creation.Disposition().String(),
		})
	}
	return newFile(p, raw, name, access), nil
}

func newFile(meta core.MetadataPlatform, raw core.RawFile, name string, access core.AccessFlags) *File {
	f := &File{
		res:    &resource{c: raw},
		raw:    raw,
		meta:   meta,
		name:   name,
		access: access,
	}
	f.cleanup = track(f, f.res)
	return f
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Access returns the access flags the file was opened with.
func (f *File) Access() core.AccessFlags {
	return f.access
}

func (f *File) usable(op string, allowed bool) error {
	if f.res.closed.Load() {
		return errClosed("file", f.name)
	}
	if !allowed {
		return fserrors.WithContextMap(
			fserrors.Newf(fserrors.CodeInvalidState, "%s on file opened for %s", op, f.access),
			map[string]any{"op": op, "path": f.name},
		)
	}
	return nil
}

// Read reads up to len(p) bytes. End of data is reported as io.EOF.
func (f *File) Read(p []byte) (int, error) {
	if err := f.usable("read", f.access.CanRead()); err != nil {
		return 0, err
	}
	n, err := f.raw.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, core.Wrap("read", f.name, err)
	}
	return n, err
}

// Write writes len(p) bytes.
func (f *File) Write(p []byte) (int, error) {
	if err := f.usable("write", f.access.CanWrite()); err != nil {
		return 0, err
	}
	n, err := f.raw.Write(p)
	return n, core.Wrap("write", f.name, err)
}

// Seek sets the offset for the next Read or Write.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if err := f.usable("seek", true); err != nil {
		return 0, err
	}
	pos, err := f.raw.Seek(offset, whence)
	return pos, core.Wrap("seek", f.name, err)
}

// Flush commits buffered data to the platform. Raw files are unbuffered,
// so Flush only verifies the file is writable.
func (f *File) Flush() error {
	return f.usable("flush", f.access.CanWrite())
}

// Sync commits the file contents to stable storage.
// It fails with NOT_IMPLEMENTED when the platform file cannot sync.
func (f *File) Sync() error {
	if err := f.usable("sync", true); err != nil {
		return err
	}
	s, ok := f.raw.(core.Syncer)
	if !ok {
		return core.Wrap("sync", f.name, core.ErrUnsupported)
	}
	return core.Wrap("sync", f.name, s.Sync())
}

// Truncate changes the size of the file without moving the offset.
// It fails with NOT_IMPLEMENTED when the platform file cannot truncate.
func (f *File) Truncate(size int64) error {
	if err := f.usable("truncate", f.access.CanWrite()); err != nil {
		return err
	}
	t, ok := f.raw.(core.Truncater)
	if !ok {
		return core.Wrap("truncate", f.name, core.ErrUnsupported)
	}
	return core.Wrap("truncate", f.name, t.Truncate(size))
}

// Stat returns fresh metadata for the file's path.
func (f *File) Stat() (core.Stat, error) {
	if err := f.usable("stat", true); err != nil {
		return core.Stat{}, err
	}
	st, err := f.meta.Stat(f.name)
	return st, core.Wrap("stat", f.name, err)
}

// Close releases the file. Closing a closed file is a no-op.
func (f *File) Close() error {
	f.cleanup.Stop()
	return core.Wrap("close", f.name, f.res.release())
}

// Compile-time interface checks.
var (
	_ core.InputStream  = (*File)(nil)
	_ core.OutputStream = (*File)(nil)
	_ core.IOStream     = (*File)(nil)
)
