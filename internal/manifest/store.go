package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/layergen/internal/fsops"
)

// Store reads and writes the manifest in an output root.
type Store struct {
	fs     fsops.FS
	outDir string
}

// NewStore creates a Store for the output root.
func NewStore(fs fsops.FS, outDir string) *Store {
	return &Store{fs: fs, outDir: outDir}
}

// Path returns the manifest location.
func (s *Store) Path() string {
	return filepath.Join(s.outDir, FileName)
}

// Load reads the manifest. Returns os.ErrNotExist if none has been written.
func (s *Store) Load() (*Manifest, error) {
	data, err := s.fs.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	if m.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported manifest version %d", m.Version)
	}

	return &m, nil
}

// Save writes the manifest atomically.
func (s *Store) Save(m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := s.fs.AtomicWrite(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
