//go:build windows

package native

import (
	"io/fs"
	"os"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/fs/core"
)

func statPath(path string, follow bool) (core.Stat, error) {
	if follow {
		return statFollow(path)
	}

	p16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return core.Stat{}, &fs.PathError{Op: "GetFileAttributesEx", Path: path, Err: err}
	}

	var data windows.Win32FileAttributeData
	err = windows.GetFileAttributesEx(p16, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data)))
	if err != nil {
		return core.Stat{}, &fs.PathError{Op: "GetFileAttributesEx", Path: path, Err: err}
	}

	return fromAttributes(
		data.FileAttributes,
		time.Unix(0, data.CreationTime.Nanoseconds()),
		time.Unix(0, data.LastWriteTime.Nanoseconds()),
		uint64(data.FileSizeHigh)<<32|uint64(data.FileSizeLow),
	), nil
}

// statFollow resolves reparse points through os.Stat, whose Sys value
// carries the Win32 attribute data of the final target.
func statFollow(path string) (core.Stat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return core.Stat{}, err
	}

	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return fromFileInfo(info), nil
	}
	return fromAttributes(
		data.FileAttributes&^windows.FILE_ATTRIBUTE_REPARSE_POINT,
		time.Unix(0, data.CreationTime.Nanoseconds()),
		time.Unix(0, data.LastWriteTime.Nanoseconds()),
		uint64(data.FileSizeHigh)<<32|uint64(data.FileSizeLow),
	), nil
}

func fromAttributes(attrs uint32, created, modified time.Time, size uint64) core.Stat {
	st := core.Stat{
		Created:  created,
		Modified: modified,
	}
	switch {
	case attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0:
		// Links and junctions are neither files nor directories.
	case attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0:
		st.IsDirectory = true
	default:
		st.IsFile = true
		st.SizeInBytes = size
	}
	return st
}
