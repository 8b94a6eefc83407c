package walk

import (
	"log/slog"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/fs/handle"
	"github.com/jmgilman/go/fs/internal/pathutil"
)

// Remove deletes path. A missing path fails without touching anything.
//
// Without recursive, a non-empty directory fails with NOT_EMPTY. With
// recursive, the children of a directory are removed depth first before the
// directory itself. The first child that cannot be removed aborts the whole
// removal with that child's error.
//
// The path is probed without following links, so a link to a directory is
// unlinked rather than emptied.
func Remove(p core.Platform, path string, recursive bool, opts ...Option) error {
	cfg := newConfig(opts)
	path = pathutil.Normalize(path)

	st, err := p.Lstat(path)
	if err != nil {
		return core.Wrap("remove", path, err)
	}

	r := remover{p: p, log: cfg.logger}
	if !st.IsDirectory {
		return r.unlink(path)
	}
	if recursive {
		if err := r.removeChildren(path); err != nil {
			return err
		}
	}
	return r.rmdir(path)
}

type remover struct {
	p   core.Platform
	log *slog.Logger
}

func (r remover) removeChildren(dir string) error {
	d, err := handle.OpenDir(r.p, dir)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	for entry, err := range d.Contents() {
		if err != nil {
			return err
		}

		child := pathutil.Join(dir, entry.Name)
		if err := r.removeEntry(child, entry.IsDirectory); err != nil {
			r.log.Warn("recursive removal aborted", "path", dir, "child", child, "error", err)
			return err
		}
	}
	return nil
}

func (r remover) removeEntry(path string, isDir bool) error {
	if !isDir {
		return r.unlink(path)
	}
	if err := r.removeChildren(path); err != nil {
		return err
	}
	return r.rmdir(path)
}

func (r remover) unlink(path string) error {
	r.log.Debug("unlinking", "path", path)
	return core.Wrap("unlink", path, r.p.Unlink(path))
}

func (r remover) rmdir(path string) error {
	r.log.Debug("removing directory", "path", path)
	return core.Wrap("rmdir", path, r.p.Rmdir(path))
}
