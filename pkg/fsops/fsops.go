// Package fsops provides safe file operations bounded to a root directory.
// The plan store keeps all persisted records under one directory; fsops
// guarantees writes stay inside it and land atomically.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileOps defines the interface for bounded file operations.
type FileOps interface {
	// ReadFile reads content from a file within the bounded root.
	ReadFile(path string) (string, error)

	// AtomicWrite writes content atomically using temp file + rename.
	AtomicWrite(path, content string) error

	// DeleteFile deletes a file within the bounded root. Deleting a missing
	// file is not an error.
	DeleteFile(path string) error

	// Exists checks whether a file exists within the bounded root.
	Exists(path string) (bool, error)

	// ValidatePath checks that a path is valid and resolves inside root.
	ValidatePath(path string) error
}

type fileOps struct {
	rootDir string
}

// New creates a FileOps rooted at rootDir, creating the directory if needed.
func New(rootDir string) (FileOps, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path of root: %w", err)
	}
	absRoot = filepath.Clean(absRoot)

	if err := os.MkdirAll(absRoot, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create root directory: %w", err)
	}

	return &fileOps{rootDir: absRoot}, nil
}

// ValidatePath rejects empty, absolute, and root-escaping paths.
func (f *fileOps) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("path must be relative to store root: %s", path)
	}
	cleaned := filepath.Clean(path)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path escapes store root: %s", path)
	}
	return nil
}

func (f *fileOps) absPath(path string) (string, error) {
	if err := f.ValidatePath(path); err != nil {
		return "", err
	}
	return filepath.Join(f.rootDir, filepath.Clean(path)), nil
}

func (f *fileOps) ReadFile(path string) (string, error) {
	abs, err := f.absPath(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs) //nolint:gosec // path is validated against the bounded root
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

func (f *fileOps) DeleteFile(path string) error {
	abs, err := f.absPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

func (f *fileOps) Exists(path string) (bool, error) {
	abs, err := f.absPath(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}
