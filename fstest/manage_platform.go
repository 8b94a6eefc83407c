package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestManage tests the namespace operations: Rename and Unlink.
func TestManage(t *testing.T, p core.Platform) {
	TestManageWithConfig(t, p, PlatformTestConfig{})
}

// TestManageWithConfig tests the namespace operations with behavior configuration.
func TestManageWithConfig(t *testing.T, p core.Platform, config PlatformTestConfig) {
	run(t, p, config, "Manage", []subtest{
		{"RenameFile", testManageRenameFile},
		{"RenameDirectory", testManageRenameDir},
		{"RenameNotExist", testManageRenameNotExist},
		{"RenameMissingTargetDir", testManageRenameMissingTargetDir},
		{"UnlinkFile", testManageUnlinkFile},
		{"UnlinkDirectory", testManageUnlinkDir},
		{"UnlinkNotExist", testManageUnlinkNotExist},
	})
}

func testManageRenameFile(t *testing.T, p core.Platform) {
	WriteFile(t, p, "old.txt", []byte("moved"))

	if err := p.Rename("old.txt", "new.txt"); err != nil {
		t.Fatalf("Rename(old.txt, new.txt): got error %v, want nil", err)
	}
	if Exists(p, "old.txt") {
		t.Error("Rename(old.txt, new.txt): source still exists")
	}
	if got := ReadFile(t, p, "new.txt"); string(got) != "moved" {
		t.Errorf("ReadFile(new.txt): got %q, want %q", got, "moved")
	}
}

func testManageRenameDir(t *testing.T, p core.Platform) {
	MkdirAll(t, p, "olddir/inner")
	WriteFile(t, p, "olddir/inner/f.txt", []byte("f"))

	if err := p.Rename("olddir", "newdir"); err != nil {
		t.Fatalf("Rename(olddir, newdir): got error %v, want nil", err)
	}
	if Exists(p, "olddir") {
		t.Error("Rename(olddir, newdir): source still exists")
	}
	if got := ReadFile(t, p, "newdir/inner/f.txt"); string(got) != "f" {
		t.Errorf("ReadFile(newdir/inner/f.txt): got %q, want %q", got, "f")
	}
}

func testManageRenameNotExist(t *testing.T, p core.Platform) {
	err := p.Rename("ghost.txt", "other.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Rename(ghost.txt, other.txt): got error %v, want fs.ErrNotExist", err)
	}
}

func testManageRenameMissingTargetDir(t *testing.T, p core.Platform) {
	WriteFile(t, p, "stay.txt", []byte("s"))

	if err := p.Rename("stay.txt", "nodir/stay.txt"); err == nil {
		t.Fatal("Rename(stay.txt, nodir/stay.txt): got nil error, want error")
	}
	if !Exists(p, "stay.txt") {
		t.Error("Rename(stay.txt, nodir/stay.txt): source vanished after failure")
	}
}

func testManageUnlinkFile(t *testing.T, p core.Platform) {
	WriteFile(t, p, "unlink.txt", []byte("u"))

	if err := p.Unlink("unlink.txt"); err != nil {
		t.Fatalf("Unlink(unlink.txt): got error %v, want nil", err)
	}
	if _, err := p.Stat("unlink.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(unlink.txt) after Unlink: got error %v, want fs.ErrNotExist", err)
	}
}

func testManageUnlinkDir(t *testing.T, p core.Platform) {
	if err := p.Mkdir("unlink-dir"); err != nil {
		t.Fatalf("Mkdir(unlink-dir): setup failed: %v", err)
	}

	if err := p.Unlink("unlink-dir"); !errors.Is(err, core.ErrIsDirectory) {
		t.Errorf("Unlink(unlink-dir): got error %v, want core.ErrIsDirectory", err)
	}
	if !Exists(p, "unlink-dir") {
		t.Error("Unlink(unlink-dir): directory was removed")
	}
}

func testManageUnlinkNotExist(t *testing.T, p core.Platform) {
	if err := p.Unlink("never.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Unlink(never.txt): got error %v, want fs.ErrNotExist", err)
	}
}
