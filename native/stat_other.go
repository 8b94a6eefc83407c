//go:build !linux && !darwin && !windows

package native

import "github.com/jmgilman/go/fs/core"

func statPath(path string, follow bool) (core.Stat, error) {
	return statPortable(path, follow)
}
