package native_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/fs/fstest"
	"github.com/jmgilman/go/fs/native"
	"github.com/jmgilman/go/fs/walk"
)

func TestSuite(t *testing.T) {
	fstest.TestSuite(t, func() core.Platform {
		return native.New(native.WithRoot(t.TempDir()))
	})
}

func TestType(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, native.New().Type())
}

func TestWithRoot(t *testing.T) {
	root := t.TempDir()
	p := native.New(native.WithRoot(root))
	assert.Equal(t, root, p.Root())

	fstest.WriteFile(t, p, "rooted.txt", []byte("r"))
	_, err := os.Stat(filepath.Join(root, "rooted.txt"))
	require.NoError(t, err)

	// Absolute paths bypass the root.
	other := filepath.Join(t.TempDir(), "abs.txt")
	fstest.WriteFile(t, p, other, []byte("abs"))
	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, []byte("abs"), data)
}

func TestRootDirectory(t *testing.T) {
	p := native.New(native.WithRoot(t.TempDir()))

	st, err := p.Stat("")
	require.NoError(t, err)
	assert.True(t, st.IsDirectory)
}

func TestStat_Timestamps(t *testing.T) {
	p := native.New(native.WithRoot(t.TempDir()))
	fstest.WriteFile(t, p, "t.txt", []byte("t"))

	st, err := p.Stat("t.txt")
	require.NoError(t, err)
	assert.False(t, st.Created.IsZero())
	assert.False(t, st.Modified.IsZero())
	assert.False(t, st.Created.After(st.Modified.Add(1e9)), "created %v after modified %v", st.Created, st.Modified)
}

func TestSymlink_IsNeither(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("creating symbolic links requires privileges on Windows")
	}
	root := t.TempDir()
	p := native.New(native.WithRoot(root))
	fstest.MkdirAll(t, p, "target")
	require.NoError(t, os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "link")))

	st, err := p.Lstat("link")
	require.NoError(t, err)
	assert.False(t, st.IsFile)
	assert.False(t, st.IsDirectory)

	st, err = p.Stat("link")
	require.NoError(t, err)
	assert.True(t, st.IsDirectory)

	d, err := p.OpenDir("")
	require.NoError(t, err)
	defer func() { _ = d.Close() }()
	for {
		e, err := d.Next()
		if err != nil {
			break
		}
		if e.Name == "link" {
			assert.False(t, e.IsFile)
			assert.False(t, e.IsDirectory)
		}
	}

	// Unlink removes the link, never the target.
	require.NoError(t, p.Unlink("link"))
	assert.True(t, fstest.Exists(p, "target"))
}

func TestRemove_TreeWithDirectoryLink(t *testing.T) {
	root := t.TempDir()
	p := native.New(native.WithRoot(root))
	fstest.MkdirAll(t, p, "target")
	fstest.WriteFile(t, p, "target/kept.txt", []byte("k"))
	fstest.MkdirAll(t, p, "tree")
	if err := os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "tree", "link")); err != nil {
		t.Skipf("cannot create directory link: %v", err)
	}

	require.NoError(t, walk.Remove(p, "tree", true))

	assert.False(t, fstest.Exists(p, "tree"))
	assert.Equal(t, []byte("k"), fstest.ReadFile(t, p, "target/kept.txt"))
}
