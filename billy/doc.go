// Package billy implements core.Platform on top of go-billy filesystems.
//
// Two constructors cover the common cases:
//
//   - NewLocal: a disk-backed platform (osfs) rooted at a directory.
//   - NewMemory: an empty in-memory platform (memfs), used as the test double
//     for traversal and facade code.
//
// New adapts any other billy.Filesystem.
//
// # Semantics
//
// go-billy is more forgiving than the operating system in a few places. The
// adapter restores the primitive contract on top of it:
//
//   - Mkdir fails when the directory exists or its parent is missing.
//   - OpenFile and Rename fail with fs.ErrNotExist when the parent directory of
//     the target is missing, instead of creating it.
//   - Rmdir fails with core.ErrNotEmpty on a non-empty directory and
//     core.ErrNotDirectory on anything else.
//   - Unlink fails with core.ErrIsDirectory on a directory.
//
// go-billy records no creation time; Stat reports the modification time in
// its place. Directory listings are read in full when the directory is
// opened and handed out one entry at a time.
//
// # go-git Integration
//
// Unwrap returns the underlying billy.Filesystem so the same tree can be
// handed to go-git APIs.
package billy
