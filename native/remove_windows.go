//go:build windows

package native

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/fs/core"
)

func rmdir(path string) error {
	p16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &fs.PathError{Op: "RemoveDirectory", Path: path, Err: err}
	}

	err = windows.RemoveDirectory(p16)
	if err == nil {
		return nil
	}

	pathErr := &fs.PathError{Op: "RemoveDirectory", Path: path, Err: err}
	switch {
	case errors.Is(err, windows.ERROR_DIR_NOT_EMPTY):
		return core.Mark(pathErr, core.ErrNotEmpty)
	case errors.Is(err, windows.ERROR_DIRECTORY):
		return core.Mark(pathErr, core.ErrNotDirectory)
	}
	return pathErr
}

func unlink(path string) error {
	p16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &fs.PathError{Op: "DeleteFile", Path: path, Err: err}
	}

	err = windows.DeleteFile(p16)
	if err == nil {
		return nil
	}

	pathErr := &fs.PathError{Op: "DeleteFile", Path: path, Err: err}
	if !errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return pathErr
	}

	attrs, attrErr := windows.GetFileAttributes(p16)
	if attrErr != nil || attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0 {
		return pathErr
	}
	// Directory symlinks and junctions are removed like directories, without
	// touching their targets.
	if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		if err := windows.RemoveDirectory(p16); err != nil {
			return &fs.PathError{Op: "RemoveDirectory", Path: path, Err: err}
		}
		return nil
	}
	return core.Mark(pathErr, core.ErrIsDirectory)
}
