package fstest

import (
	"io"
	"slices"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// WriteFile creates or truncates name on p and writes data to it.
// The test fails immediately on any error.
func WriteFile(t testing.TB, p core.Platform, name string, data []byte) {
	t.Helper()

	f, err := p.OpenFile(name, core.AccessWrite, core.Create|core.Truncate)
	if err != nil {
		t.Fatalf("OpenFile(%s): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%s): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%s): setup failed: %v", name, err)
	}
}

// ReadFile returns the contents of name on p.
// The test fails immediately on any error.
func ReadFile(t testing.TB, p core.Platform, name string) []byte {
	t.Helper()

	f, err := p.OpenFile(name, core.AccessRead, 0)
	if err != nil {
		t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(%s): got error %v, want nil", name, err)
	}
	return data
}

// MkdirAll creates every missing directory along name.
// Segments are separated by forward slashes.
func MkdirAll(t testing.TB, p core.Platform, name string) {
	t.Helper()

	var path string
	for i := 0; i <= len(name); i++ {
		if i < len(name) && name[i] != '/' {
			continue
		}
		path = name[:i]
		if path == "" {
			continue
		}
		if st, err := p.Stat(path); err == nil && st.IsDirectory {
			continue
		}
		if err := p.Mkdir(path); err != nil {
			t.Fatalf("Mkdir(%s): setup failed: %v", path, err)
		}
	}
}

// ReadDirNames returns the sorted bare names listed by OpenDir(name).
func ReadDirNames(t testing.TB, p core.Platform, name string) []string {
	t.Helper()

	d, err := p.OpenDir(name)
	if err != nil {
		t.Fatalf("OpenDir(%s): got error %v, want nil", name, err)
	}
	defer func() { _ = d.Close() }()

	var names []string
	for {
		e, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next(%s): got error %v, want nil", name, err)
		}
		names = append(names, e.Name)
	}
	slices.Sort(names)
	return names
}

// Exists reports whether name can be probed on p.
func Exists(p core.Platform, name string) bool {
	_, err := p.Lstat(name)
	return err == nil
}
