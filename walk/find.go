package walk

import (
	"iter"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
	"github.com/jmgilman/go/fs/handle"
	"github.com/jmgilman/go/fs/internal/pathutil"
)

// FindFiles enumerates baseDir, descending into subdirectories when
// recursive is set. An empty baseDir enumerates the platform's current
// directory and yields bare relative names. baseDir is normalized first, so
// yielded names always use '/' whichever separator the caller wrote.
func FindFiles(p core.DirPlatform, baseDir string, recursive bool, opts ...Option) iter.Seq2[core.DirEntry, error] {
	cfg := newConfig(opts)
	baseDir = pathutil.Normalize(baseDir)
	return func(yield func(core.DirEntry, error) bool) {
		find(p, cfg.logger, baseDir, recursive, yield)
	}
}

// find walks one level and reports whether the consumer wants more.
func find(p core.DirPlatform, log *slog.Logger, baseDir string, recursive bool, yield func(core.DirEntry, error) bool) bool {
	d, err := handle.OpenDir(p, baseDir)
	if err != nil {
		log.Debug("skipping directory", "path", baseDir, "error", err)
		return true
	}
	defer func() { _ = d.Close() }()

	for entry, err := range d.Contents() {
		if err != nil {
			return yield(core.DirEntry{}, err)
		}

		if baseDir != "" {
			entry.Name = pathutil.Join(baseDir, entry.Name)
		}
		if !yield(entry, nil) {
			return false
		}

		if recursive && entry.IsDirectory {
			if !find(p, log, entry.Name, true, yield) {
				return false
			}
		}
	}
	return true
}

// FindMatching is FindFiles restricted to entries whose name relative to
// baseDir matches a doublestar pattern ("*.go", "cmd/**/main.go", ...).
// A pattern without a slash also matches against the final name segment,
// so "*.txt" matches "docs/readme.txt". Errors are always passed through.
func FindMatching(p core.DirPlatform, baseDir, pattern string, recursive bool, opts ...Option) (iter.Seq2[core.DirEntry, error], error) {
	// Match only reports bad patterns against a non-empty name.
	if _, err := doublestar.Match(pattern, "a"); err != nil {
		return nil, fserrors.WrapWithContext(err, fserrors.CodeInvalidInput, "invalid pattern",
			map[string]any{"pattern": pattern})
	}

	leaf := !strings.Contains(pattern, "/")
	baseDir = pathutil.Normalize(baseDir)
	prefix := pathutil.AppendSeparator(baseDir)

	return func(yield func(core.DirEntry, error) bool) {
		for entry, err := range FindFiles(p, baseDir, recursive, opts...) {
			if err != nil {
				if !yield(entry, err) {
					return
				}
				continue
			}

			rel := strings.TrimPrefix(entry.Name, prefix)
			if !matches(pattern, rel, leaf) {
				continue
			}
			if !yield(entry, nil) {
				return
			}
		}
	}, nil
}

func matches(pattern, rel string, leaf bool) bool {
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}
	if leaf {
		ok, _ := doublestar.Match(pattern, pathutil.Base(rel))
		return ok
	}
	return false
}
