//go:build darwin

package native

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fs/core"
)

func statPath(path string, follow bool) (core.Stat, error) {
	var (
		st  unix.Stat_t
		err error
		op  = "stat"
	)
	if follow {
		err = unix.Stat(path, &st)
	} else {
		op = "lstat"
		err = unix.Lstat(path, &st)
	}
	if err != nil {
		return core.Stat{}, &fs.PathError{Op: op, Path: path, Err: err}
	}

	mode := uint32(st.Mode) & unix.S_IFMT
	out := core.Stat{
		IsFile:      mode == unix.S_IFREG,
		IsDirectory: mode == unix.S_IFDIR,
		Created:     time.Unix(st.Btim.Unix()),
		Modified:    time.Unix(st.Mtim.Unix()),
	}
	if out.IsFile {
		out.SizeInBytes = uint64(st.Size)
	}
	return out, nil
}
