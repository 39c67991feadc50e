package ioutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.cue")
	if err := os.WriteFile(path, []byte("TITLE \"A\"\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "TITLE \"A\"\r\n" {
		t.Errorf("ReadFile = %q", got)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.cue"))

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("err = %v, want *ReadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadError should unwrap to the os error, got %v", err)
	}
}

func TestWriteFile_BadDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "dir", "a.cue"), []byte("x"))

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cue")
	if Exists(path) {
		t.Error("Exists should be false before creation")
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists should be true after creation")
	}
}
