// Package layers reads the layer directories under a layers root and the
// option files inside each of them.
//
// A layer directory is named "<4-digit index><name>", for example
// "0002body". Layers are ordered by index; ties keep directory listing order.
// Options are the regular (non-directory) entries of a layer directory.
package layers

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/danieljhkim/layergen/internal/fsops"
)

// PrefixWidth is the number of leading characters holding the layer index.
const PrefixWidth = 4

// ErrInvalidName indicates a layer directory name without a numeric prefix.
var ErrInvalidName = errors.New("invalid layer directory name")

// Layer is one ordered category of assets backed by a directory.
type Layer struct {
	// Index is the ordering key parsed from the name prefix
	Index uint16 `json:"index"`

	// Name is the directory name with the prefix removed
	Name string `json:"name"`

	// DirName is the full directory name on disk
	DirName string `json:"dirName"`
}

// ParseName splits a layer directory name into its index and display name.
func ParseName(dirName string) (Layer, error) {
	if len(dirName) < PrefixWidth {
		return Layer{}, fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidName, dirName, PrefixWidth)
	}

	index, err := strconv.ParseUint(dirName[:PrefixWidth], 10, 16)
	if err != nil {
		return Layer{}, fmt.Errorf("%w: %q does not start with a %d-digit index: %v", ErrInvalidName, dirName, PrefixWidth, err)
	}

	return Layer{
		Index:   uint16(index),
		Name:    dirName[PrefixWidth:],
		DirName: dirName,
	}, nil
}

// Reader lists layers and options through an FS.
type Reader struct {
	fs   fsops.FS
	root string
}

// NewReader creates a Reader for the layers root.
func NewReader(fs fsops.FS, root string) *Reader {
	return &Reader{fs: fs, root: root}
}

// Root returns the layers root directory.
func (r *Reader) Root() string {
	return r.root
}

// ReadLayers returns every layer directory under the root, sorted by index.
// Non-directory entries are ignored.
func (r *Reader) ReadLayers() ([]Layer, error) {
	entries, err := r.fs.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read layers root %s: %w", r.root, err)
	}

	var layers []Layer
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		layer, err := ParseName(entry.Name())
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	slices.SortStableFunc(layers, func(a, b Layer) int {
		return int(a.Index) - int(b.Index)
	})

	return layers, nil
}

// DirNames returns the directory names of layers, preserving order.
func DirNames(layers []Layer) []string {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.DirName
	}
	return names
}

// ListOptions returns the names of the non-directory entries inside the
// layer directory, sorted by name so ordinals are reproducible.
func (r *Reader) ListOptions(dirName string) ([]string, error) {
	if err := r.fs.ValidateIdentifier(dirName); err != nil {
		return nil, fmt.Errorf("invalid layer %q: %w", dirName, err)
	}

	dir := filepath.Join(r.root, dirName)
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read layer directory %s: %w", dir, err)
	}

	options := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		options = append(options, entry.Name())
	}
	slices.Sort(options)

	return options, nil
}

// AssetPath returns the path of one option file in a layer.
func (r *Reader) AssetPath(dirName, option string) string {
	return filepath.Join(r.root, dirName, option)
}
