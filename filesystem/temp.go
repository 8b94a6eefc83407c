package filesystem

import (
	"github.com/google/uuid"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/fs/handle"
	"github.com/jmgilman/go/fs/internal/pathutil"
)

func tempName(dir, prefix string) string {
	return pathutil.Join(pathutil.Normalize(dir), prefix+uuid.NewString())
}

// CreateTempDir creates a new directory in dir whose name starts with
// prefix and returns its path. dir must exist.
func (fsys *FileSystem) CreateTempDir(dir, prefix string) (string, error) {
	path := tempName(dir, prefix)
	fsys.log.Debug("creating temporary directory", "path", path)
	if err := fsys.p.Mkdir(path); err != nil {
		return "", core.Wrap("mkdir", path, err)
	}
	return path, nil
}

// CreateTempFile creates and opens a new file in dir whose name starts with
// prefix. The file is opened for reading and writing and is never an
// existing file. The caller must close it.
func (fsys *FileSystem) CreateTempFile(dir, prefix string) (*handle.File, error) {
	return handle.OpenFile(fsys.p, tempName(dir, prefix), core.AccessReadWrite, core.Exclusive)
}
