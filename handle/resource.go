package handle

import (
	"io"
	"io/fs"
	"runtime"
	"sync"
	"sync/atomic"

	fserrors "github.com/jmgilman/go/fs/errors"
)

// resource releases an io.Closer exactly once.
type resource struct {
	c      io.Closer
	once   sync.Once
	closed atomic.Bool
}

func (r *resource) release() error {
	var err error
	r.once.Do(func() {
		r.closed.Store(true)
		err = r.c.Close()
	})
	return err
}

// track registers r for release when owner becomes unreachable.
func track[T any](owner *T, r *resource) runtime.Cleanup {
	return runtime.AddCleanup(owner, func(r *resource) { _ = r.release() }, r)
}

func errClosed(kind, path string) error {
	return fserrors.WrapWithContext(fs.ErrClosed, fserrors.CodeInvalidState,
		kind+" is closed", map[string]any{"path": path})
}
