// Package pathutil provides platform-neutral path string handling.
//
// Both '/' and '\' are treated as separators on every platform, so paths
// written for either family can be fed to the filesystem layer unchanged.
// Normalized paths use '/' only.
package pathutil

import (
	"path"
	"strings"
)

// Separator is the separator of normalized paths.
const Separator = '/'

func isSep(c byte) bool { return c == '/' || c == '\\' }

// Normalize converts path to the neutral form:
// backslashes become forward slashes, "." and ".." segments are resolved
// lexically, duplicate and trailing separators are dropped.
// Returns "" for empty paths and for "." itself.
// A leading "//" (UNC prefix) is preserved.
func Normalize(p string) string {
	if p == "" {
		return ""
	}

	p = strings.ReplaceAll(p, "\\", "/")
	unc := strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "///")

	p = path.Clean(p)
	if p == "." {
		return ""
	}
	if unc && p != "/" {
		p = "/" + p
	}
	return p
}

// Join concatenates base and leaf with exactly one separator.
// An empty base returns leaf unmodified; an empty leaf returns base.
// A separator-terminated base is not given a second separator, and leading
// separators on leaf are dropped.
func Join(base, leaf string) string {
	if base == "" {
		return leaf
	}

	leaf = TrimLeadingSeparators(leaf)
	if leaf == "" {
		return base
	}
	if HasTrailingSeparator(base) {
		return base + leaf
	}
	return base + string(Separator) + leaf
}

// ParentOf returns the part of p before its last separator ('/' or '\').
// Returns "" when p contains no separator.
func ParentOf(p string) string {
	if i := lastSep(p); i >= 0 {
		return p[:i]
	}
	return ""
}

// Base returns the part of p after its last separator.
func Base(p string) string {
	return p[lastSep(p)+1:]
}

// HasTrailingSeparator reports whether p ends in a separator.
func HasTrailingSeparator(p string) bool {
	return p != "" && isSep(p[len(p)-1])
}

// TrimLeadingSeparators strips separators from the start of p.
func TrimLeadingSeparators(p string) string {
	for p != "" && isSep(p[0]) {
		p = p[1:]
	}
	return p
}

// AppendSeparator returns p terminated by exactly one separator.
// An empty path stays empty.
func AppendSeparator(p string) string {
	if p == "" || HasTrailingSeparator(p) {
		return p
	}
	return p + string(Separator)
}

// HasPrefix reports whether p equals dir or lies below it.
func HasPrefix(p, dir string) bool {
	if dir == "" {
		return true
	}
	if p == dir {
		return true
	}
	return strings.HasPrefix(p, AppendSeparator(dir))
}

// IsRoot reports whether the normalized path p names a root: the
// relative root "", "/", a drive such as "C:", or a UNC share "//host/share".
func IsRoot(p string) bool {
	switch {
	case p == "" || p == "/":
		return true
	case len(p) == 2 && p[1] == ':' && isLetter(p[0]):
		return true
	case strings.HasPrefix(p, "//"):
		return strings.Count(p[2:], "/") <= 1
	}
	return false
}

// Escapes reports whether the normalized relative path p climbs above the
// directory it is relative to.
func Escapes(p string) bool {
	return HasPrefix(p, "..")
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func lastSep(p string) int {
	return strings.LastIndexAny(p, "/\\")
}
