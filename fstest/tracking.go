package fstest

import (
	"io/fs"
	"sync"

	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/fs/internal/pathutil"
)

// Op names a primitive for failure injection.
type Op string

const (
	OpStat     Op = "stat"
	OpLstat    Op = "lstat"
	OpOpenFile Op = "openfile"
	OpOpenDir  Op = "opendir"
	OpMkdir    Op = "mkdir"
	OpRmdir    Op = "rmdir"
	OpUnlink   Op = "unlink"
	OpRename   Op = "rename"
)

// Tracking decorates a Platform with open-handle accounting and failure
// injection. It is safe for concurrent use.
type Tracking struct {
	core.Platform

	mu           sync.Mutex
	filesOpened  int
	filesOpen    int
	dirsOpened   int
	dirsOpen     int
	doubleCloses int
	removed      []string
	failures     map[failureKey]error
	readFailures map[string]readFailure
}

type failureKey struct {
	op   Op
	path string
}

type readFailure struct {
	after int
	err   error
}

// NewTracking wraps p.
func NewTracking(p core.Platform) *Tracking {
	return &Tracking{
		Platform:     p,
		failures:     make(map[failureKey]error),
		readFailures: make(map[string]readFailure),
	}
}

// Fail makes every call of op on path return err.
func (t *Tracking) Fail(op Op, path string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[failureKey{op, pathutil.Normalize(path)}] = err
}

// FailRead makes directory handles opened on path return err from Next
// once after entries have been produced.
func (t *Tracking) FailRead(path string, after int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readFailures[pathutil.Normalize(path)] = readFailure{after: after, err: err}
}

// OpenFiles returns the number of raw files currently open.
func (t *Tracking) OpenFiles() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filesOpen
}

// OpenDirs returns the number of raw directories currently open.
func (t *Tracking) OpenDirs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirsOpen
}

// DirsOpened returns the number of successful OpenDir calls.
func (t *Tracking) DirsOpened() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirsOpened
}

// FilesOpened returns the number of successful OpenFile calls.
func (t *Tracking) FilesOpened() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filesOpened
}

// DoubleCloses returns how many times an already closed raw handle was
// closed again.
func (t *Tracking) DoubleCloses() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doubleCloses
}

// Removed returns the paths successfully removed by Rmdir and Unlink,
// in call order.
func (t *Tracking) Removed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.removed))
	copy(out, t.removed)
	return out
}

func (t *Tracking) injected(op Op, path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err, ok := t.failures[failureKey{op, pathutil.Normalize(path)}]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (t *Tracking) Stat(path string) (core.Stat, error) {
	if err := t.injected(OpStat, path); err != nil {
		return core.Stat{}, err
	}
	return t.Platform.Stat(path)
}

func (t *Tracking) Lstat(path string) (core.Stat, error) {
	if err := t.injected(OpLstat, path); err != nil {
		return core.Stat{}, err
	}
	return t.Platform.Lstat(path)
}

func (t *Tracking) OpenFile(path string, access core.AccessFlags, creation core.CreationFlags) (core.RawFile, error) {
	if err := t.injected(OpOpenFile, path); err != nil {
		return nil, err
	}
	f, err := t.Platform.OpenFile(path, access, creation)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.filesOpened++
	t.filesOpen++
	t.mu.Unlock()
	return &trackedFile{RawFile: f, t: t}, nil
}

func (t *Tracking) OpenDir(path string) (core.RawDir, error) {
	if err := t.injected(OpOpenDir, path); err != nil {
		return nil, err
	}
	d, err := t.Platform.OpenDir(path)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.dirsOpened++
	t.dirsOpen++
	rf, fail := t.readFailures[pathutil.Normalize(path)]
	t.mu.Unlock()

	td := &trackedDir{RawDir: d, t: t}
	if fail {
		td.fail = &rf
	}
	return td, nil
}

func (t *Tracking) Mkdir(path string) error {
	if err := t.injected(OpMkdir, path); err != nil {
		return err
	}
	return t.Platform.Mkdir(path)
}

func (t *Tracking) Rmdir(path string) error {
	if err := t.injected(OpRmdir, path); err != nil {
		return err
	}
	if err := t.Platform.Rmdir(path); err != nil {
		return err
	}
	t.recordRemoval(path)
	return nil
}

func (t *Tracking) Unlink(path string) error {
	if err := t.injected(OpUnlink, path); err != nil {
		return err
	}
	if err := t.Platform.Unlink(path); err != nil {
		return err
	}
	t.recordRemoval(path)
	return nil
}

func (t *Tracking) Rename(oldpath, newpath string) error {
	if err := t.injected(OpRename, oldpath); err != nil {
		return err
	}
	return t.Platform.Rename(oldpath, newpath)
}

func (t *Tracking) recordRemoval(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removed = append(t.removed, pathutil.Normalize(path))
}

type trackedFile struct {
	core.RawFile
	t      *Tracking
	closed bool
}

func (f *trackedFile) Close() error {
	f.t.mu.Lock()
	if f.closed {
		f.t.doubleCloses++
		f.t.mu.Unlock()
		return fs.ErrClosed
	}
	f.closed = true
	f.t.filesOpen--
	f.t.mu.Unlock()
	return f.RawFile.Close()
}

// Truncate forwards to the wrapped file when it supports truncation.
func (f *trackedFile) Truncate(size int64) error {
	if tr, ok := f.RawFile.(core.Truncater); ok {
		return tr.Truncate(size)
	}
	return core.ErrUnsupported
}

// Sync forwards to the wrapped file when it supports syncing.
func (f *trackedFile) Sync() error {
	if s, ok := f.RawFile.(core.Syncer); ok {
		return s.Sync()
	}
	return core.ErrUnsupported
}

type trackedDir struct {
	core.RawDir
	t       *Tracking
	fail    *readFailure
	yielded int
	closed  bool
}

func (d *trackedDir) Next() (core.DirEntry, error) {
	if d.fail != nil && d.yielded >= d.fail.after {
		err := d.fail.err
		d.fail = nil
		return core.DirEntry{}, err
	}
	e, err := d.RawDir.Next()
	if err == nil {
		d.yielded++
	}
	return e, err
}

func (d *trackedDir) Close() error {
	d.t.mu.Lock()
	if d.closed {
		d.t.doubleCloses++
		d.t.mu.Unlock()
		return fs.ErrClosed
	}
	d.closed = true
	d.t.dirsOpen--
	d.t.mu.Unlock()
	return d.RawDir.Close()
}

// Compile-time interface checks.
var _ core.Platform = (*Tracking)(nil)
