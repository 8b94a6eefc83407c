// Package core defines the platform-neutral contracts of the filesystem layer.
//
// Calling code works with a small neutral data model (Stat, DirEntry, access
// and creation flags) and never branches on the host operating system. The
// operating system is reached through a Platform, an injected capability set
// with exactly one concrete implementation per target (see the native and
// billy packages), so the traversal engine and the facade are written once.
//
// # Interface Hierarchy
//
// Platform is composed of four capability interfaces:
//
//   - MetadataPlatform: metadata probes (Stat, Lstat)
//   - FilePlatform: file opening with access and creation flags (OpenFile)
//   - DirPlatform: directory enumeration and creation (OpenDir, Mkdir, Rmdir)
//   - ManagePlatform: namespace changes (Rename, Unlink)
//
// Raw handles returned by a Platform (RawFile, RawDir) own one operating
// system resource each. They are wrapped by the handle package, which adds
// access checks and exactly-once release.
//
// Optional raw file capabilities are discovered by type assertion:
//
//	if t, ok := raw.(core.Truncater); ok {
//	    err := t.Truncate(0)
//	}
//
// # Paths
//
// Paths handed to a Platform use forward slashes. They are either relative
// to the platform root or absolute. The empty path names the platform root.
//
// # Errors
//
// Platforms report failures as plain Go errors whose chains contain the io/fs
// sentinels (fs.ErrNotExist, fs.ErrPermission, ...) or the sentinels defined
// here. Wrap turns such an error into a coded error from the errors package.
package core
