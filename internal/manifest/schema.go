// Package manifest records which options produced each rendered composite.
//
// Composite filenames carry only an ordinal, so the manifest is the way back
// from "17.png" to the assets it was built from. It is written into the output
// root after every composite of a run has been written successfully.
package manifest

import "time"

// FileName is the manifest file written into the output root.
const FileName = "manifest.json"

// SchemaVersion is bumped whenever the manifest layout changes.
const SchemaVersion = 1

// Manifest describes one completed generation run.
type Manifest struct {
	// Version is the manifest schema version
	Version int `json:"version"`

	// GeneratedAt is when the run finished
	GeneratedAt time.Time `json:"generatedAt"`

	// Layers is the ordered list of layer directory names
	Layers []string `json:"layers"`

	// Format is the output encoding ("png", "bmp" or "tiff")
	Format string `json:"format"`

	// Size is the canvas edge length in pixels
	Size int `json:"size"`

	// Entries has one record per composite, in ordinal order
	Entries []Entry `json:"entries"`
}

// Entry describes one composite.
type Entry struct {
	// Index is the ordinal of the combination
	Index int `json:"index"`

	// File is the output filename relative to the output root
	File string `json:"file"`

	// Options are the chosen option filenames, aligned with Manifest.Layers
	Options []string `json:"options"`

	// Digest is the SHA-256 of the written file
	Digest string `json:"digest"`

	// Dominant is the dominant colour of the composite as "#rrggbb"
	Dominant string `json:"dominant,omitempty"`
}

// New creates an empty Manifest for the given layers.
func New(layers []string, format string, size int) *Manifest {
	return &Manifest{
		Version: SchemaVersion,
		Layers:  layers,
		Format:  format,
		Size:    size,
		Entries: []Entry{},
	}
}

// Add appends an entry.
func (m *Manifest) Add(e Entry) {
	m.Entries = append(m.Entries, e)
}
