//go:build unix

package native

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fs/core"
)

func rmdir(path string) error {
	err := unix.Rmdir(path)
	if err == nil {
		return nil
	}

	pathErr := &fs.PathError{Op: "rmdir", Path: path, Err: err}
	switch {
	case errors.Is(err, unix.ENOTEMPTY), errors.Is(err, unix.EEXIST):
		return core.Mark(pathErr, core.ErrNotEmpty)
	case errors.Is(err, unix.ENOTDIR):
		return core.Mark(pathErr, core.ErrNotDirectory)
	}
	return pathErr
}

func unlink(path string) error {
	err := unix.Unlink(path)
	if err == nil {
		return nil
	}

	pathErr := &fs.PathError{Op: "unlink", Path: path, Err: err}
	// Linux reports EISDIR; other systems report EPERM for directories.
	if errors.Is(err, unix.EISDIR) || errors.Is(err, unix.EPERM) {
		var st unix.Stat_t
		if unix.Lstat(path, &st) == nil && uint32(st.Mode)&unix.S_IFMT == unix.S_IFDIR {
			return core.Mark(pathErr, core.ErrIsDirectory)
		}
	}
	return pathErr
}
