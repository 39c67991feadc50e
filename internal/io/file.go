// Package ioutils provides the file access layer for cue sheet
// documents: whole-file reads and writes with typed errors, so callers
// can tell an unreadable source from an unwritable destination.
//
// File handles are scoped to each call: opened immediately before the
// read or write and closed before returning, on every path.
package ioutils

import (
	"fmt"
	"os"
)

// ReadError reports a failure to open or read a source file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure to open or write a destination file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadFile reads the whole file at path. Any failure is returned as a
// *ReadError; it is never swallowed.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(data), nil
}

// WriteFile writes data to path, creating the file with mode 0644 or
// truncating an existing one. Failures are returned as a *WriteError.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
