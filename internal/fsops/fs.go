// Package fsops provides filesystem operations with safety guarantees.
//
// All filesystem access in layergen goes through the FS interface, which
// provides abstractions for the handful of operations the pipeline needs
// along with name validation for layer and option entries.
//
// Key features:
//   - Atomic writes using temp file + rename
//   - Name validation for directory entries used to build paths
//   - Testable via the FS interface
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
// All filesystem access in layergen must go through this interface.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// AtomicWrite writes data to path atomically using temp file + rename.
	// The parent directory must already exist.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ValidateIdentifier validates a single path element for safety.
	ValidateIdentifier(id string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists the entries of a directory, sorted by filename.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Open opens a file for reading.
func (fs *RealFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// AtomicWrite writes data to path atomically using temp file + rename.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Create temp file in the same directory as target
	tmpFile, err := os.CreateTemp(dir, ".layergen-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Atomically rename temp file to target
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Success - don't clean up temp file
	tmpFile = nil
	return nil
}

// ValidateIdentifier validates a directory entry name (layer directory or
// option filename) before it is joined into a path.
func (fs *RealFS) ValidateIdentifier(id string) error {
	return ValidateIdentifier(id)
}

// ValidateIdentifier rejects empty names, names containing path separators,
// and the "." and ".." entries.
func ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("invalid identifier: empty")
	}

	if strings.Contains(id, string(filepath.Separator)) || strings.Contains(id, "/") || strings.Contains(id, "\\") {
		return fmt.Errorf("invalid identifier %q: must not contain path separators", id)
	}

	if id == "." || id == ".." {
		return fmt.Errorf("invalid identifier %q: path traversal not allowed", id)
	}

	return nil
}
