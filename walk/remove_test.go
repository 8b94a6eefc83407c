package walk_test

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
	"github.com/jmgilman/go/fs/fstest"
	"github.com/jmgilman/go/fs/native"
	"github.com/jmgilman/go/fs/walk"
)

func TestRemove_RecursiveLeavesNothing(t *testing.T) {
	p := newTree(t)

	require.NoError(t, walk.Remove(p, "sub", true))

	assert.False(t, fstest.Exists(p, "sub"))
	for _, path := range []string{"sub/y.txt", "sub/inner", "sub/inner/z.txt", "sub/inner/deeper"} {
		assert.False(t, fstest.Exists(p, path), path)
	}
	assert.True(t, fstest.Exists(p, "x.txt"))
	assert.True(t, fstest.Exists(p, "other/w.txt"))
	assert.Equal(t, 0, p.OpenDirs())
}

func TestRemove_PostOrder(t *testing.T) {
	p := newTree(t)
	require.NoError(t, walk.Remove(p, "sub", true))

	removed := p.Removed()
	require.Len(t, removed, 5)
	assert.Equal(t, "sub", removed[len(removed)-1])

	for i, dir := range removed {
		for j, path := range removed {
			if strings.HasPrefix(path, dir+"/") {
				assert.Less(t, j, i, "%s must be removed before %s", path, dir)
			}
		}
	}
}

func TestRemove_BackslashPath(t *testing.T) {
	platforms := map[string]core.Platform{
		"native": native.New(native.WithRoot(t.TempDir())),
		"memory": billy.NewMemory(),
	}

	for name, raw := range platforms {
		t.Run(name, func(t *testing.T) {
			p := fstest.NewTracking(raw)
			fstest.MkdirAll(t, p, "sub/inner")
			fstest.WriteFile(t, p, "sub/inner/z.txt", []byte("z"))
			fstest.WriteFile(t, p, "sub/keep.txt", []byte("k"))

			require.NoError(t, walk.Remove(p, `sub\inner\`, true))

			assert.Equal(t, []string{"sub/inner/z.txt", "sub/inner"}, p.Removed())
			assert.False(t, fstest.Exists(p, "sub/inner"))
			assert.True(t, fstest.Exists(p, "sub/keep.txt"))
		})
	}
}

func TestRemove_Missing(t *testing.T) {
	p := newTree(t)

	err := walk.Remove(p, "missing/path", true)
	require.Error(t, err)
	assert.Equal(t, fserrors.CodeNotFound, fserrors.GetCode(err))
	assert.Empty(t, p.Removed())
	assert.Equal(t, 0, p.DirsOpened())
}

func TestRemove_NonRecursive(t *testing.T) {
	p := newTree(t)

	err := walk.Remove(p, "sub", false)
	require.Error(t, err)
	assert.Equal(t, fserrors.CodeNotEmpty, fserrors.GetCode(err))
	assert.True(t, fstest.Exists(p, "sub/y.txt"))

	require.NoError(t, walk.Remove(p, "sub/inner/deeper", false))
	assert.False(t, fstest.Exists(p, "sub/inner/deeper"))

	require.NoError(t, walk.Remove(p, "x.txt", false))
	assert.False(t, fstest.Exists(p, "x.txt"))
}

func TestRemove_FileIgnoresRecursive(t *testing.T) {
	p := newTree(t)

	require.NoError(t, walk.Remove(p, "other/w.txt", true))
	assert.False(t, fstest.Exists(p, "other/w.txt"))
	assert.True(t, fstest.Exists(p, "other"))
}

func TestRemove_AbortsOnFirstFailure(t *testing.T) {
	p := fstest.NewTracking(billy.NewMemory())
	fstest.MkdirAll(t, p, "d")
	for _, name := range []string{"a", "b", "c"} {
		fstest.WriteFile(t, p, "d/"+name, nil)
	}
	boom := errors.New("locked")
	p.Fail(fstest.OpUnlink, "d/b", boom)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := walk.Remove(p, "d", true, walk.WithLogger(logger))
	require.ErrorIs(t, err, boom)

	removed := p.Removed()
	assert.Less(t, len(removed), 3)
	assert.NotContains(t, removed, "d/b")
	assert.NotContains(t, removed, "d")
	assert.True(t, fstest.Exists(p, "d"))
	assert.True(t, fstest.Exists(p, "d/b"))
	assert.Equal(t, 0, p.OpenDirs())
	assert.Contains(t, buf.String(), "recursive removal aborted")
}

func TestRemove_NestedFailureClosesEveryLevel(t *testing.T) {
	p := newTree(t)
	p.Fail(fstest.OpRmdir, "sub/inner/deeper", errors.New("busy"))

	require.Error(t, walk.Remove(p, "", true))
	assert.Equal(t, 0, p.OpenDirs())
	assert.True(t, fstest.Exists(p, "sub/inner/deeper"))
}

func TestRemove_SymlinkIsUnlinked(t *testing.T) {
	mem := billy.NewMemory()
	p := fstest.NewTracking(mem)
	fstest.MkdirAll(t, p, "target")
	fstest.WriteFile(t, p, "target/keep.txt", []byte("keep"))
	fstest.MkdirAll(t, p, "dir")
	require.NoError(t, mem.Unwrap().Symlink("/target", "dir/link"))

	entries := collect(t, walk.FindFiles(p, "dir", true))
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsFile)
	assert.False(t, entries[0].IsDirectory)

	require.NoError(t, walk.Remove(p, "dir", true))
	assert.False(t, fstest.Exists(p, "dir"))
	assert.Equal(t, []byte("keep"), fstest.ReadFile(t, p, "target/keep.txt"))
	assert.True(t, slices.Contains(p.Removed(), "dir/link"))
}
