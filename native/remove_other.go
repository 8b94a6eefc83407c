//go:build !unix && !windows

package native

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/fs/core"
)

func rmdir(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: path, Err: core.ErrNotDirectory}
	}
	return os.Remove(path)
}

func unlink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "unlink", Path: path, Err: core.ErrIsDirectory}
	}
	return os.Remove(path)
}
