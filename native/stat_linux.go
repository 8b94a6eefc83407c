//go:build linux

package native

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fs/core"
)

func statPath(path string, follow bool) (core.Stat, error) {
	flags := unix.AT_STATX_SYNC_AS_STAT
	if !follow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}

	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, flags, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		// Kernels before 4.11 have no statx.
		return statPortable(path, follow)
	}
	if err != nil {
		return core.Stat{}, &fs.PathError{Op: "statx", Path: path, Err: err}
	}

	mode := uint32(stx.Mode) & unix.S_IFMT
	st := core.Stat{
		IsFile:      mode == unix.S_IFREG,
		IsDirectory: mode == unix.S_IFDIR,
		Modified:    statxTime(stx.Mtime),
		Created:     statxTime(stx.Ctime),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		st.Created = statxTime(stx.Btime)
	}
	if st.IsFile {
		st.SizeInBytes = stx.Size
	}
	return st, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
