package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "c291bmQ=")
	data := []byte("OggS payload")
	if err := os.WriteFile(src, data, 0600); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "out", "sound.ogg")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read copy: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Copy content = %q, expected %q", got, data)
	}

	// source untouched
	if got, _ := os.ReadFile(src); string(got) != string(data) {
		t.Error("Source file was modified")
	}
}

func TestCopyFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := os.WriteFile(src, []byte("new"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old content"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}
	if got, _ := os.ReadFile(dst); string(got) != "new" {
		t.Errorf("Expected overwritten content, got %q", got)
	}
}

func TestCopyFile_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.png")

	err := CopyFile(filepath.Join(dir, "missing"), dst)
	if err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("Destination should not exist after failed copy, stat err = %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no leftovers, found %d entries", len(entries))
	}
}

func TestCopyFile_SourceIsDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "folder")
	if err := os.Mkdir(src, DefaultDirPermissions); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	dst := filepath.Join(outDir, "copy")

	if err := CopyFile(src, dst); err == nil {
		t.Fatal("Expected error when copying a directory, got nil")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("Destination should not exist after failed copy")
	}
	entries, _ := os.ReadDir(outDir)
	if len(entries) != 0 {
		t.Errorf("Expected no temp files left, found %d", len(entries))
	}
}

func TestCopyFile_SameFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "same")
	if err := os.WriteFile(src, []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}

	err := CopyFile(src, src)
	if !errors.Is(err, ErrSameFile) {
		t.Errorf("Expected ErrSameFile, got %v", err)
	}
	if got, _ := os.ReadFile(src); string(got) != "data" {
		t.Error("Source changed after same-file copy")
	}
}
