package handle_test

import (
	"errors"
	"io"
	"io/fs"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
	"github.com/jmgilman/go/fs/fstest"
	"github.com/jmgilman/go/fs/handle"
)

func newTracking(t *testing.T) *fstest.Tracking {
	t.Helper()
	return fstest.NewTracking(billy.NewMemory())
}

func TestOpenFile_RoundTrip(t *testing.T) {
	p := newTracking(t)

	w, err := handle.OpenFile(p, "data.bin", core.AccessWrite, core.Create)
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	r, err := handle.OpenFile(p, "data.bin", core.AccessRead, 0)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestOpenFile_Failure(t *testing.T) {
	p := newTracking(t)

	f, err := handle.OpenFile(p, "missing.txt", core.AccessRead, 0)
	require.Error(t, err)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, fserrors.CodeNotFound, fserrors.GetCode(err))

	var fsErr fserrors.FSError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "open", fsErr.Context()["op"])
	assert.Equal(t, "missing.txt", fsErr.Context()["path"])
	assert.Equal(t, "open-existing", fsErr.Context()["disposition"])
	assert.Equal(t, 0, p.FilesOpened())
}

func TestFile_AccessEnforced(t *testing.T) {
	p := newTracking(t)
	fstest.WriteFile(t, p, "ro.txt", []byte("read only"))

	tests := []struct {
		name   string
		access core.AccessFlags
		op     func(*handle.File) error
	}{
		{
			name:   "write on read-only",
			access: core.AccessRead,
			op: func(f *handle.File) error {
				_, err := f.Write([]byte("x"))
				return err
			},
		},
		{
			name:   "read on write-only",
			access: core.AccessWrite,
			op: func(f *handle.File) error {
				_, err := f.Read(make([]byte, 1))
				return err
			},
		},
		{
			name:   "truncate on read-only",
			access: core.AccessRead,
			op:     func(f *handle.File) error { return f.Truncate(0) },
		},
		{
			name:   "flush on read-only",
			access: core.AccessRead,
			op:     func(f *handle.File) error { return f.Flush() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := handle.OpenFile(p, "ro.txt", tt.access, 0)
			require.NoError(t, err)
			defer func() { _ = f.Close() }()

			err = tt.op(f)
			require.Error(t, err)
			assert.Equal(t, fserrors.CodeInvalidState, fserrors.GetCode(err))
		})
	}

	assert.Equal(t, []byte("read only"), fstest.ReadFile(t, p, "ro.txt"))
}

func TestFile_CloseTwice(t *testing.T) {
	p := newTracking(t)

	f, err := handle.OpenFile(p, "c.txt", core.AccessWrite, core.Create)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	assert.Equal(t, 0, p.OpenFiles())
	assert.Equal(t, 0, p.DoubleCloses())
}

func TestFile_UseAfterClose(t *testing.T) {
	p := newTracking(t)

	f, err := handle.OpenFile(p, "u.txt", core.AccessReadWrite, core.Create)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = f.Write([]byte("late"))
	assert.ErrorIs(t, err, fs.ErrClosed)
	assert.Equal(t, fserrors.CodeInvalidState, fserrors.GetCode(err))

	_, err = f.Seek(0, io.SeekStart)
	assert.ErrorIs(t, err, fs.ErrClosed)
}

func TestFile_SeekTruncateStat(t *testing.T) {
	p := newTracking(t)

	f, err := handle.OpenFile(p, "s.txt", core.AccessReadWrite, core.Create|core.Truncate)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, "s.txt", f.Name())
	assert.Equal(t, core.AccessReadWrite, f.Access())

	_, err = f.Write([]byte("0123456789"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(5))
	require.NoError(t, f.Sync())

	st, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), st.SizeInBytes)

	pos, err := f.Seek(1, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pos)

	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), rest)
}

func TestFile_ReleasedWhenUnreachable(t *testing.T) {
	p := newTracking(t)

	func() {
		_, err := handle.OpenFile(p, "leak.txt", core.AccessWrite, core.Create)
		require.NoError(t, err)
	}()
	require.Equal(t, 1, p.FilesOpened())

	assert.Eventually(t, func() bool {
		runtime.GC()
		return p.OpenFiles() == 0
	}, 5*time.Second, 10*time.Millisecond)
}
