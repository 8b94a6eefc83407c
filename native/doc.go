// Package native implements core.Platform on the host operating system.
//
// Exactly one metadata probe is compiled in per target:
//
//   - Linux: statx(2), reporting the birth time when the filesystem records it
//     and the status change time otherwise.
//   - Darwin: stat(2)/lstat(2), reporting st_birthtimespec.
//   - Windows: GetFileAttributesEx and the Win32 attribute data returned by
//     os.Stat, reporting the creation FILETIME.
//   - Other Unix systems: os.Stat/os.Lstat, reporting the modification time
//     as the creation time.
//
// Directory and file removal use rmdir(2)/unlink(2) on Unix systems and
// RemoveDirectory/DeleteFile on Windows, so a directory is never unlinked by
// accident and a file is never passed to rmdir.
//
// Usage:
//
//	p := native.New(native.WithRoot("/srv/data"))
//	st, err := p.Stat("reports/2024.csv")
//
// # Thread Safety
//
// A Platform holds only immutable configuration and is safe for concurrent
// use. Raw handles it returns are not.
package native
