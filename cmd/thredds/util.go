package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmgilman/go/errors"
)

// A TemporaryFileSource hands out temporary files which are removed when the
// program exits unless they were kept.
type TemporaryFileSource struct {
	BaseDir string
	Prefix  string

	mu    sync.Mutex
	files []*os.File
}

func (tfs *TemporaryFileSource) Create(dir string) (*os.File, error) {
	if dir == "" {
		dir = tfs.BaseDir
	}
	f, err := os.CreateTemp(dir, tfs.Prefix)
	if err != nil {
		return nil, err
	}

	tfs.mu.Lock()
	tfs.files = append(tfs.files, f)
	tfs.mu.Unlock()
	return f, nil
}

// Keep renames the temporary file f to name. Once renamed it is no longer
// managed; if the rename fails f stays managed so RemoveAll cleans it up.
func (tfs *TemporaryFileSource) Keep(f *os.File, name string) error {
	if !tfs.manages(f) {
		return errors.New(errors.CodeInvalidInput, "temporary file was not managed by me")
	}
	if err := os.Rename(f.Name(), name); err != nil {
		return errors.Wrapf(err, errors.CodeExecutionFailed, "keeping %v", name)
	}
	tfs.forget(f)
	return nil
}

// Remove deletes the temporary file f from disk.
func (tfs *TemporaryFileSource) Remove(f *os.File) error {
	if !tfs.forget(f) {
		return errors.New(errors.CodeInvalidInput, "temporary file was not managed by me")
	}
	return os.Remove(f.Name())
}

func (tfs *TemporaryFileSource) RemoveAll() error {
	tfs.mu.Lock()
	files := tfs.files
	tfs.files = nil
	tfs.mu.Unlock()

	var lastErr error
	for _, f := range files {
		f.Close()
		if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
			lastErr = err
		}
	}
	return lastErr
}

func (tfs *TemporaryFileSource) manages(f *os.File) bool {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	for _, managed := range tfs.files {
		if managed == f {
			return true
		}
	}
	return false
}

func (tfs *TemporaryFileSource) forget(f *os.File) bool {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	for fIdx := range tfs.files {
		if tfs.files[fIdx] == f {
			tfs.files = append(tfs.files[:fIdx], tfs.files[fIdx+1:]...)
			return true
		}
	}
	return false
}

// destination returns where the data file with the given URL path is saved
// below baseDir. Paths escaping baseDir are rejected.
func destination(baseDir, urlPath string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(urlPath))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.CodeInvalidInput, "refusing to save %q outside of %v", urlPath, baseDir)
	}
	return filepath.Join(baseDir, rel), nil
}
