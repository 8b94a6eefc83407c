package fstest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/fstest"
)

func TestMkdirAll(t *testing.T) {
	p := billy.NewMemory()
	fstest.MkdirAll(t, p, "a/b/c")
	fstest.MkdirAll(t, p, "a/b/d")

	assert.Equal(t, []string{"b"}, fstest.ReadDirNames(t, p, "a"))
	assert.Equal(t, []string{"c", "d"}, fstest.ReadDirNames(t, p, "a/b"))
}

func TestReadWriteFile(t *testing.T) {
	p := billy.NewMemory()
	fstest.WriteFile(t, p, "f.txt", []byte("content"))
	assert.Equal(t, []byte("content"), fstest.ReadFile(t, p, "f.txt"))
	assert.True(t, fstest.Exists(p, "f.txt"))
	assert.False(t, fstest.Exists(p, "g.txt"))
}
