package core

import (
	"strings"
	"time"
)

// DirEntry is one entry discovered while enumerating a directory.
//
// IsFile and IsDirectory are mutually exclusive. Symbolic links and special
// files report neither; traversal yields them but never descends into them.
type DirEntry struct {
	// Name is the entry path. A RawDir produces bare names; the traversal
	// engine rewrites Name to the path relative to the traversal root.
	Name string

	IsFile      bool
	IsDirectory bool
}

// Stat is a metadata snapshot of a single path.
type Stat struct {
	IsFile      bool
	IsDirectory bool

	// SizeInBytes is only meaningful when IsFile is true.
	SizeInBytes uint64

	// Created is the creation (birth) time. Platforms that do not record one
	// report the best available substitute; see the platform documentation.
	Created time.Time

	// Modified is the last content modification time.
	Modified time.Time
}

// AccessFlags select the byte-level operations granted on an open file.
type AccessFlags uint8

const (
	// AccessRead grants reading.
	AccessRead AccessFlags = 1 << iota
	// AccessWrite grants writing.
	AccessWrite

	// AccessReadWrite grants both.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead reports whether reading is granted.
func (a AccessFlags) CanRead() bool { return a&AccessRead != 0 }

// CanWrite reports whether writing is granted.
func (a AccessFlags) CanWrite() bool { return a&AccessWrite != 0 }

// Valid reports whether a is a non-empty combination of known flags.
func (a AccessFlags) Valid() bool {
	return a != 0 && a&^AccessReadWrite == 0
}

func (a AccessFlags) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessReadWrite:
		return "read|write"
	default:
		return "invalid"
	}
}

// CreationFlags control what happens when the target file is absent or present.
type CreationFlags uint8

const (
	// Create creates the file if it is absent.
	Create CreationFlags = 1 << iota
	// Truncate truncates an existing file to zero length.
	Truncate
	// Exclusive requires the file to be absent and creates it.
	Exclusive
)

func (c CreationFlags) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c&Create != 0 {
		parts = append(parts, "create")
	}
	if c&Truncate != 0 {
		parts = append(parts, "truncate")
	}
	if c&Exclusive != 0 {
		parts = append(parts, "exclusive")
	}
	return strings.Join(parts, "|")
}

// Disposition is the combined effect of the creation flags.
type Disposition int

const (
	// OpenExisting opens the file and fails if it is absent.
	OpenExisting Disposition = iota
	// OpenAlways creates the file if absent, otherwise opens it unchanged.
	OpenAlways
	// TruncateExisting truncates the file and fails if it is absent.
	TruncateExisting
	// CreateAlways creates the file or truncates it unconditionally.
	CreateAlways
	// CreateNew creates the file and fails if it exists.
	CreateNew
)

// Disposition maps the creation flags onto a Disposition:
//
//	none             -> OpenExisting
//	Create           -> OpenAlways
//	Truncate         -> TruncateExisting
//	Create|Truncate  -> CreateAlways
//	Exclusive (+any) -> CreateNew
func (c CreationFlags) Disposition() Disposition {
	if c&Exclusive != 0 {
		return CreateNew
	}
	switch c & (Create | Truncate) {
	case Create:
		return OpenAlways
	case Truncate:
		return TruncateExisting
	case Create | Truncate:
		return CreateAlways
	default:
		return OpenExisting
	}
}

func (d Disposition) String() string {
	switch d {
	case OpenExisting:
		return "open-existing"
	case OpenAlways:
		return "open-always"
	case TruncateExisting:
		return "truncate-existing"
	case CreateAlways:
		return "create-always"
	case CreateNew:
		return "create-new"
	default:
		return "invalid"
	}
}
