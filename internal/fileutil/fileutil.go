// Package fileutil installs output files atomically.
package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"pkt.systems/onboard"
)

// rename is swapped out by tests to simulate a crash before installation.
var rename = os.Rename

// WriteAtomic streams write into a temporary file next to path and renames
// it over path once it is complete, so path never holds a partial file. The
// temporary file is removed on every failure and path is left untouched.
// Filesystem failures are *onboard.WriteError; an error returned by write
// itself is passed through. It returns the number of bytes installed.
func WriteAtomic(path string, perm os.FileMode, write func(io.Writer) error) (int64, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return 0, &onboard.WriteError{Op: "create temp", Path: path, Err: err}
	}
	tmp := f.Name()
	installed := false
	defer func() {
		if !installed {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	cw := &countingWriter{w: f}
	if err := write(cw); err != nil {
		if cw.err != nil {
			return 0, &onboard.WriteError{Op: "write", Path: tmp, Err: cw.err}
		}
		return 0, err
	}
	if err := f.Chmod(perm); err != nil && runtime.GOOS != "windows" {
		return 0, &onboard.WriteError{Op: "chmod", Path: tmp, Err: err}
	}
	if err := f.Sync(); err != nil {
		return 0, &onboard.WriteError{Op: "sync", Path: tmp, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &onboard.WriteError{Op: "close", Path: tmp, Err: err}
	}
	if err := replace(tmp, path); err != nil {
		return 0, &onboard.WriteError{Op: "rename", Path: path, Err: err}
	}
	installed = true
	return cw.n, nil
}

// replace renames src over dst. Windows refuses to rename over an existing
// file, so there the old file is removed first.
func replace(src, dst string) error {
	err := rename(src, dst)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}
	if rmErr := os.Remove(dst); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		return err
	}
	return rename(src, dst)
}

// FileSize returns the size of the file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil && c.err == nil {
		c.err = err
	}
	return n, err
}
