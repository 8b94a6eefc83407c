package fstest

import (
	"errors"
	"io"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestDirectories tests OpenDir, Mkdir and Rmdir.
func TestDirectories(t *testing.T, p core.Platform) {
	TestDirectoriesWithConfig(t, p, PlatformTestConfig{})
}

// TestDirectoriesWithConfig tests directory primitives with behavior configuration.
func TestDirectoriesWithConfig(t *testing.T, p core.Platform, config PlatformTestConfig) {
	run(t, p, config, "Directories", []subtest{
		{"Mkdir", testDirsMkdir},
		{"MkdirExisting", testDirsMkdirExisting},
		{"MkdirMissingParent", testDirsMkdirMissingParent},
		{"OpenDirEntries", testDirsOpenDirEntries},
		{"OpenDirEmpty", testDirsOpenDirEmpty},
		{"OpenDirNotExist", testDirsOpenDirNotExist},
		{"OpenDirOnFile", testDirsOpenDirOnFile},
		{"OpenDirManyEntries", testDirsOpenDirMany},
		{"RmdirEmpty", testDirsRmdirEmpty},
		{"RmdirNotEmpty", testDirsRmdirNotEmpty},
		{"RmdirOnFile", testDirsRmdirOnFile},
	})
}

func testDirsMkdir(t *testing.T, p core.Platform) {
	if err := p.Mkdir("made"); err != nil {
		t.Fatalf("Mkdir(made): got error %v, want nil", err)
	}
	st, err := p.Stat("made")
	if err != nil || !st.IsDirectory {
		t.Errorf("Stat(made) after Mkdir: got (%+v, %v), want directory", st, err)
	}
}

func testDirsMkdirExisting(t *testing.T, p core.Platform) {
	if err := p.Mkdir("twice"); err != nil {
		t.Fatalf("Mkdir(twice): setup failed: %v", err)
	}
	if err := p.Mkdir("twice"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(twice) second time: got error %v, want fs.ErrExist", err)
	}
}

func testDirsMkdirMissingParent(t *testing.T, p core.Platform) {
	err := p.Mkdir("no-parent/child")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Mkdir(no-parent/child): got error %v, want fs.ErrNotExist", err)
	}
	if Exists(p, "no-parent") {
		t.Error("Mkdir(no-parent/child): parent directory was created")
	}
}

func testDirsOpenDirEntries(t *testing.T, p core.Platform) {
	MkdirAll(t, p, "listing/sub")
	WriteFile(t, p, "listing/a.txt", []byte("a"))
	WriteFile(t, p, "listing/b.txt", []byte("b"))
	WriteFile(t, p, "listing/sub/deep.txt", []byte("deep"))

	d, err := p.OpenDir("listing")
	if err != nil {
		t.Fatalf("OpenDir(listing): got error %v, want nil", err)
	}
	defer func() { _ = d.Close() }()

	got := map[string]core.DirEntry{}
	for {
		e, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next(listing): got error %v, want nil", err)
		}
		if e.Name == "." || e.Name == ".." {
			t.Errorf("Next(listing): got %q, want no dot entries", e.Name)
		}
		got[e.Name] = e
	}

	if len(got) != 3 {
		t.Fatalf("OpenDir(listing): got %d entries %v, want 3", len(got), got)
	}
	for _, name := range []string{"a.txt", "b.txt"} {
		if e := got[name]; !e.IsFile || e.IsDirectory {
			t.Errorf("entry %s: got %+v, want file", name, e)
		}
	}
	if e := got["sub"]; !e.IsDirectory || e.IsFile {
		t.Errorf("entry sub: got %+v, want directory", e)
	}

	// Exhausted directories keep reporting EOF.
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("Next(listing) after EOF: got error %v, want io.EOF", err)
	}
}

func testDirsOpenDirEmpty(t *testing.T, p core.Platform) {
	if err := p.Mkdir("hollow"); err != nil {
		t.Fatalf("Mkdir(hollow): setup failed: %v", err)
	}
	if names := ReadDirNames(t, p, "hollow"); len(names) != 0 {
		t.Errorf("OpenDir(hollow): got %v, want no entries", names)
	}
}

func testDirsOpenDirNotExist(t *testing.T, p core.Platform) {
	d, err := p.OpenDir("nowhere")
	if err == nil {
		_ = d.Close()
		t.Fatal("OpenDir(nowhere): got nil error, want error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDir(nowhere): got error %v, want fs.ErrNotExist", err)
	}
}

func testDirsOpenDirOnFile(t *testing.T, p core.Platform) {
	WriteFile(t, p, "plain.txt", []byte("x"))

	d, err := p.OpenDir("plain.txt")
	if err == nil {
		_ = d.Close()
		t.Fatal("OpenDir(plain.txt): got nil error, want error")
	}
	if !errors.Is(err, core.ErrNotDirectory) {
		t.Errorf("OpenDir(plain.txt): got error %v, want core.ErrNotDirectory", err)
	}
}

func testDirsOpenDirMany(t *testing.T, p core.Platform) {
	if err := p.Mkdir("many"); err != nil {
		t.Fatalf("Mkdir(many): setup failed: %v", err)
	}

	// More entries than a single platform read batch.
	var want []string
	for i := range 150 {
		name := "f" + string(rune('a'+i/26)) + string(rune('a'+i%26))
		WriteFile(t, p, "many/"+name, nil)
		want = append(want, name)
	}
	slices.Sort(want)

	got := ReadDirNames(t, p, "many")
	if !slices.Equal(got, want) {
		t.Errorf("OpenDir(many): got %d entries, want %d", len(got), len(want))
	}
}

func testDirsRmdirEmpty(t *testing.T, p core.Platform) {
	if err := p.Mkdir("gone"); err != nil {
		t.Fatalf("Mkdir(gone): setup failed: %v", err)
	}
	if err := p.Rmdir("gone"); err != nil {
		t.Fatalf("Rmdir(gone): got error %v, want nil", err)
	}
	if _, err := p.Stat("gone"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(gone) after Rmdir: got error %v, want fs.ErrNotExist", err)
	}
}

func testDirsRmdirNotEmpty(t *testing.T, p core.Platform) {
	MkdirAll(t, p, "full")
	WriteFile(t, p, "full/keep.txt", []byte("k"))

	if err := p.Rmdir("full"); !errors.Is(err, core.ErrNotEmpty) {
		t.Errorf("Rmdir(full): got error %v, want core.ErrNotEmpty", err)
	}
	if got := ReadFile(t, p, "full/keep.txt"); string(got) != "k" {
		t.Errorf("ReadFile(full/keep.txt) after failed Rmdir: got %q, want %q", got, "k")
	}
}

func testDirsRmdirOnFile(t *testing.T, p core.Platform) {
	WriteFile(t, p, "rmdir-file.txt", []byte("x"))

	if err := p.Rmdir("rmdir-file.txt"); !errors.Is(err, core.ErrNotDirectory) {
		t.Errorf("Rmdir(rmdir-file.txt): got error %v, want core.ErrNotDirectory", err)
	}
}
