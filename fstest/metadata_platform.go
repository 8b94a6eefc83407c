package fstest

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/go/fs/core"
)

// TestMetadata tests the metadata probes: Stat and Lstat.
func TestMetadata(t *testing.T, p core.Platform) {
	TestMetadataWithConfig(t, p, PlatformTestConfig{})
}

// TestMetadataWithConfig tests the metadata probes with behavior configuration.
func TestMetadataWithConfig(t *testing.T, p core.Platform, config PlatformTestConfig) {
	run(t, p, config, "Metadata", []subtest{
		{"StatFile", testMetadataStatFile},
		{"StatDirectory", testMetadataStatDir},
		{"StatEmptyFile", testMetadataStatEmptyFile},
		{"StatNotExist", testMetadataStatNotExist},
		{"LstatRegular", testMetadataLstat},
		{"FreshSnapshot", testMetadataFreshSnapshot},
	})
}

func testMetadataStatFile(t *testing.T, p core.Platform) {
	data := []byte("metadata content")
	WriteFile(t, p, "meta.txt", data)

	st, err := p.Stat("meta.txt")
	if err != nil {
		t.Fatalf("Stat(meta.txt): got error %v, want nil", err)
	}
	if !st.IsFile || st.IsDirectory {
		t.Errorf("Stat(meta.txt): got IsFile=%v IsDirectory=%v, want true false", st.IsFile, st.IsDirectory)
	}
	if st.SizeInBytes != uint64(len(data)) {
		t.Errorf("Stat(meta.txt).SizeInBytes: got %d, want %d", st.SizeInBytes, len(data))
	}
	if st.Modified.IsZero() {
		t.Error("Stat(meta.txt).Modified: got zero time")
	}
	if st.Created.IsZero() {
		t.Error("Stat(meta.txt).Created: got zero time")
	}
	if time.Since(st.Modified) > time.Hour || time.Until(st.Modified) > time.Hour {
		t.Errorf("Stat(meta.txt).Modified: got %v, want close to now", st.Modified)
	}
}

func testMetadataStatDir(t *testing.T, p core.Platform) {
	if err := p.Mkdir("metadir"); err != nil {
		t.Fatalf("Mkdir(metadir): setup failed: %v", err)
	}

	st, err := p.Stat("metadir")
	if err != nil {
		t.Fatalf("Stat(metadir): got error %v, want nil", err)
	}
	if !st.IsDirectory || st.IsFile {
		t.Errorf("Stat(metadir): got IsFile=%v IsDirectory=%v, want false true", st.IsFile, st.IsDirectory)
	}
}

func testMetadataStatEmptyFile(t *testing.T, p core.Platform) {
	WriteFile(t, p, "empty.txt", nil)

	st, err := p.Stat("empty.txt")
	if err != nil {
		t.Fatalf("Stat(empty.txt): got error %v, want nil", err)
	}
	if st.SizeInBytes != 0 {
		t.Errorf("Stat(empty.txt).SizeInBytes: got %d, want 0", st.SizeInBytes)
	}
}

func testMetadataStatNotExist(t *testing.T, p core.Platform) {
	_, err := p.Stat("does-not-exist.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(does-not-exist.txt): got error %v, want fs.ErrNotExist", err)
	}

	_, err = p.Lstat("does-not-exist.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(does-not-exist.txt): got error %v, want fs.ErrNotExist", err)
	}
}

func testMetadataLstat(t *testing.T, p core.Platform) {
	WriteFile(t, p, "lstat.txt", []byte("abc"))

	st, err := p.Lstat("lstat.txt")
	if err != nil {
		t.Fatalf("Lstat(lstat.txt): got error %v, want nil", err)
	}
	if !st.IsFile {
		t.Errorf("Lstat(lstat.txt).IsFile: got false, want true")
	}
	if st.SizeInBytes != 3 {
		t.Errorf("Lstat(lstat.txt).SizeInBytes: got %d, want 3", st.SizeInBytes)
	}
}

func testMetadataFreshSnapshot(t *testing.T, p core.Platform) {
	WriteFile(t, p, "grow.txt", []byte("a"))
	before, err := p.Stat("grow.txt")
	if err != nil {
		t.Fatalf("Stat(grow.txt): got error %v, want nil", err)
	}

	WriteFile(t, p, "grow.txt", []byte("abcdef"))
	after, err := p.Stat("grow.txt")
	if err != nil {
		t.Fatalf("Stat(grow.txt): got error %v, want nil", err)
	}

	if before.SizeInBytes != 1 || after.SizeInBytes != 6 {
		t.Errorf("Stat(grow.txt).SizeInBytes: got %d then %d, want 1 then 6", before.SizeInBytes, after.SizeInBytes)
	}
}
