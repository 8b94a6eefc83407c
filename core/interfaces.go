package core

import (
	"io"
)

// FSType represents the underlying type of platform implementation.
type FSType int

const (
	// FSTypeUnknown indicates the platform type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host operating system's filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Platform is the complete primitive capability set for one platform family.
//
// Implementations translate the neutral contracts below onto operating system
// calls (open/stat/opendir/readdir/mkdir/rmdir/rename/unlink on POSIX systems,
// CreateFile/GetFileAttributesEx/FindFirstFile/CreateDirectory/RemoveDirectory/
// MoveFile/DeleteFile on Windows) or onto an in-memory model.
type Platform interface {
	MetadataPlatform
	FilePlatform
	DirPlatform
	ManagePlatform

	// Type returns the underlying platform type.
	Type() FSType
}

// MetadataPlatform probes path metadata.
type MetadataPlatform interface {
	// Stat returns metadata for path, following symbolic links.
	// Missing and inaccessible paths both fail.
	Stat(path string) (Stat, error)

	// Lstat returns metadata for path without following a final symbolic link.
	// A link reports neither IsFile nor IsDirectory.
	Lstat(path string) (Stat, error)
}

// FilePlatform opens files.
type FilePlatform interface {
	// OpenFile opens path with the given access and creation flags.
	// The creation flags select a Disposition; see CreationFlags.Disposition.
	OpenFile(path string, access AccessFlags, creation CreationFlags) (RawFile, error)
}

// DirPlatform enumerates, creates, and removes directories.
type DirPlatform interface {
	// OpenDir opens path for enumeration. It fails when path does not exist
	// or is not a directory.
	OpenDir(path string) (RawDir, error)

	// Mkdir creates a single directory. The parent must exist.
	// Creating an existing directory fails with fs.ErrExist.
	Mkdir(path string) error

	// Rmdir removes an empty directory. A non-empty directory fails with
	// ErrNotEmpty and a non-directory fails with ErrNotDirectory.
	Rmdir(path string) error
}

// ManagePlatform changes the namespace.
type ManagePlatform interface {
	// Rename atomically renames oldpath to newpath. It is not retried or
	// emulated when the platform refuses, for example across devices.
	Rename(oldpath, newpath string) error

	// Unlink removes a non-directory entry (file, symbolic link, ...).
	// A directory fails with ErrIsDirectory.
	Unlink(path string) error
}

// RawFile is an open platform file. It owns one file descriptor or handle.
type RawFile interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// RawDir is an open platform directory iteration context.
type RawDir interface {
	// Next returns the next entry in platform-native order. The entry name is
	// the bare name, without the directory path. Next returns io.EOF once the
	// directory is exhausted. The entries "." and ".." are never returned.
	Next() (DirEntry, error)

	// Close releases the iteration context.
	Close() error
}

// Truncater allows truncating a file to a specified size.
//
// Not all RawFile implementations support truncation. Callers should use
// type assertion to check if this capability is available.
type Truncater interface {
	// Truncate changes the size of the file.
	// It does not change the I/O offset.
	Truncate(size int64) error
}

// Syncer allows syncing file contents to stable storage.
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}
