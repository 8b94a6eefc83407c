package native

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/fs/core"
)

// statPortable probes path through the os package. Platforms without a
// creation time primitive report the modification time in its place.
func statPortable(path string, follow bool) (core.Stat, error) {
	var (
		info fs.FileInfo
		err  error
	)
	if follow {
		info, err = os.Stat(path)
	} else {
		info, err = os.Lstat(path)
	}
	if err != nil {
		return core.Stat{}, err
	}
	return fromFileInfo(info), nil
}

func fromFileInfo(info fs.FileInfo) core.Stat {
	st := core.Stat{
		IsFile:      info.Mode().IsRegular(),
		IsDirectory: info.IsDir(),
		Created:     info.ModTime(),
		Modified:    info.ModTime(),
	}
	if st.IsFile {
		st.SizeInBytes = uint64(info.Size())
	}
	return st
}
