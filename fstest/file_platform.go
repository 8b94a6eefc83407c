package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestFiles tests OpenFile: creation dispositions, access flags, and
// byte-level I/O on the returned raw file.
func TestFiles(t *testing.T, p core.Platform) {
	TestFilesWithConfig(t, p, PlatformTestConfig{})
}

// TestFilesWithConfig tests OpenFile with behavior configuration.
func TestFilesWithConfig(t *testing.T, p core.Platform, config PlatformTestConfig) {
	run(t, p, config, "Files", []subtest{
		{"RoundTrip", testFilesRoundTrip},
		{"OpenExisting", testFilesOpenExisting},
		{"OpenAlways", testFilesOpenAlways},
		{"TruncateExisting", testFilesTruncateExisting},
		{"CreateAlways", testFilesCreateAlways},
		{"CreateNew", testFilesCreateNew},
		{"ReadWriteSeek", testFilesReadWriteSeek},
		{"InvalidAccess", testFilesInvalidAccess},
		{"OpenDirectory", testFilesOpenDirectory},
		{"CreateInMissingDir", testFilesCreateInMissingDir},
	})
}

func testFilesRoundTrip(t *testing.T, p core.Platform) {
	want := []byte("hello, world\n")
	WriteFile(t, p, "roundtrip.txt", want)

	if got := ReadFile(t, p, "roundtrip.txt"); !bytes.Equal(got, want) {
		t.Errorf("ReadFile(roundtrip.txt): got %q, want %q", got, want)
	}
}

func testFilesOpenExisting(t *testing.T, p core.Platform) {
	_, err := p.OpenFile("absent.txt", core.AccessRead, 0)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(absent.txt, open-existing): got error %v, want fs.ErrNotExist", err)
	}
	if Exists(p, "absent.txt") {
		t.Error("OpenFile(absent.txt, open-existing): file was created")
	}
}

func testFilesOpenAlways(t *testing.T, p core.Platform) {
	f, err := p.OpenFile("always.txt", core.AccessWrite, core.Create)
	if err != nil {
		t.Fatalf("OpenFile(always.txt, open-always): got error %v, want nil", err)
	}
	if _, err := f.Write([]byte("keep")); err != nil {
		t.Fatalf("Write(always.txt): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(always.txt): got error %v, want nil", err)
	}

	// Opening again must not truncate.
	f, err = p.OpenFile("always.txt", core.AccessWrite, core.Create)
	if err != nil {
		t.Fatalf("OpenFile(always.txt, open-always) second time: got error %v, want nil", err)
	}
	_ = f.Close()

	if got := ReadFile(t, p, "always.txt"); string(got) != "keep" {
		t.Errorf("ReadFile(always.txt): got %q, want %q", got, "keep")
	}
}

func testFilesTruncateExisting(t *testing.T, p core.Platform) {
	_, err := p.OpenFile("trunc-absent.txt", core.AccessWrite, core.Truncate)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(trunc-absent.txt, truncate-existing): got error %v, want fs.ErrNotExist", err)
	}

	WriteFile(t, p, "trunc.txt", []byte("0123456789"))
	f, err := p.OpenFile("trunc.txt", core.AccessWrite, core.Truncate)
	if err != nil {
		t.Fatalf("OpenFile(trunc.txt, truncate-existing): got error %v, want nil", err)
	}
	_ = f.Close()

	if got := ReadFile(t, p, "trunc.txt"); len(got) != 0 {
		t.Errorf("ReadFile(trunc.txt): got %q, want empty", got)
	}
}

func testFilesCreateAlways(t *testing.T, p core.Platform) {
	WriteFile(t, p, "create-always.txt", []byte("a much longer original"))
	WriteFile(t, p, "create-always.txt", []byte("short"))

	if got := ReadFile(t, p, "create-always.txt"); string(got) != "short" {
		t.Errorf("ReadFile(create-always.txt): got %q, want %q", got, "short")
	}
}

func testFilesCreateNew(t *testing.T, p core.Platform) {
	f, err := p.OpenFile("new.txt", core.AccessWrite, core.Exclusive)
	if err != nil {
		t.Fatalf("OpenFile(new.txt, create-new): got error %v, want nil", err)
	}
	_ = f.Close()

	_, err = p.OpenFile("new.txt", core.AccessWrite, core.Create|core.Exclusive)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("OpenFile(new.txt, create-new) on existing file: got error %v, want fs.ErrExist", err)
	}
}

func testFilesReadWriteSeek(t *testing.T, p core.Platform) {
	f, err := p.OpenFile("rw.txt", core.AccessReadWrite, core.Create|core.Truncate)
	if err != nil {
		t.Fatalf("OpenFile(rw.txt, read|write): got error %v, want nil", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write([]byte("abcdef")); err != nil {
		t.Fatalf("Write(rw.txt): got error %v, want nil", err)
	}

	pos, err := f.Seek(2, io.SeekStart)
	if err != nil || pos != 2 {
		t.Fatalf("Seek(2, SeekStart): got (%d, %v), want (2, nil)", pos, err)
	}

	buf := make([]byte, 3)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatalf("ReadFull(rw.txt): got error %v, want nil", err)
	}
	if string(buf) != "cde" {
		t.Errorf("Read after Seek: got %q, want %q", buf, "cde")
	}
}

func testFilesInvalidAccess(t *testing.T, p core.Platform) {
	_, err := p.OpenFile("invalid.txt", 0, core.Create)
	if err == nil {
		t.Fatal("OpenFile(invalid.txt) with no access flags: got nil error, want error")
	}
	if Exists(p, "invalid.txt") {
		t.Error("OpenFile(invalid.txt) with no access flags: file was created")
	}
}

func testFilesOpenDirectory(t *testing.T, p core.Platform) {
	if err := p.Mkdir("filedir"); err != nil {
		t.Fatalf("Mkdir(filedir): setup failed: %v", err)
	}

	_, err := p.OpenFile("filedir", core.AccessRead, 0)
	if !errors.Is(err, core.ErrIsDirectory) {
		t.Errorf("OpenFile(filedir): got error %v, want core.ErrIsDirectory", err)
	}
}

func testFilesCreateInMissingDir(t *testing.T, p core.Platform) {
	_, err := p.OpenFile("missing-dir/file.txt", core.AccessWrite, core.Create)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(missing-dir/file.txt, open-always): got error %v, want fs.ErrNotExist", err)
	}
	if Exists(p, "missing-dir") {
		t.Error("OpenFile(missing-dir/file.txt): parent directory was created")
	}
}
