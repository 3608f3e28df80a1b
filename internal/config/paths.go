// Package config manages layergen input/output locations and render settings.
//
// The layers root holds one subdirectory per layer and the output root
// receives the rendered composites. Both default to directories relative to
// the working directory and can be overridden with environment variables
// or command-line flags.
package config

import "os"

const (
	// DefaultLayersDir is the layers root used when nothing overrides it.
	DefaultLayersDir = "./layers"

	// DefaultOutDir is the output root used when nothing overrides it.
	DefaultOutDir = "./out"

	// EnvLayers overrides the layers root.
	EnvLayers = "LAYERGEN_LAYERS"

	// EnvOut overrides the output root.
	EnvOut = "LAYERGEN_OUT"
)

// Paths contains the filesystem roots used by a generation run.
type Paths struct {
	// Layers is the directory containing one subdirectory per layer
	Layers string

	// Out is the directory composites are written to. It must already exist.
	Out string
}

// DefaultPaths returns the default paths for layergen.
// Paths can be overridden with environment variables:
// - LAYERGEN_LAYERS: Override the layers root
// - LAYERGEN_OUT: Override the output root
func DefaultPaths() *Paths {
	layers := os.Getenv(EnvLayers)
	if layers == "" {
		layers = DefaultLayersDir
	}
	out := os.Getenv(EnvOut)
	if out == "" {
		out = DefaultOutDir
	}

	return &Paths{
		Layers: layers,
		Out:    out,
	}
}

// Override replaces any path for which a non-empty value is given.
func (p *Paths) Override(layers, out string) {
	if layers != "" {
		p.Layers = layers
	}
	if out != "" {
		p.Out = out
	}
}
